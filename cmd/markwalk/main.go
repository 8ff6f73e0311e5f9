package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dgallion1/markwalk"
	"github.com/dgallion1/markwalk/inspect"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var format string

	root := &cobra.Command{
		Use:           "markwalk",
		Short:         "Inspect markdown documents by walking their syntax tree",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&format, "format", "text", "output format: text, json or yaml")

	root.AddCommand(
		newStatsCmd(&format),
		newLinksCmd(&format),
		newOutlineCmd(&format),
		newTasksCmd(&format),
	)
	return root
}

// readSource reads the markdown input: the file argument if given, stdin
// otherwise.
func readSource(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(cmd.InOrStdin())
}

func newStatsCmd(format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "Count nodes, words and tree depth",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			stats, err := markwalk.FromMarkdown[inspect.Stats](src)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), *format, stats, func(w io.Writer) {
				fmt.Fprintf(w, "nodes: %d\nwords: %d\nmax depth: %d\n", stats.Nodes, stats.Words, stats.MaxDepth)
				kinds := make([]string, 0, len(stats.Kinds))
				for k := range stats.Kinds {
					kinds = append(kinds, k)
				}
				sort.Strings(kinds)
				for _, k := range kinds {
					fmt.Fprintf(w, "%-24s %d\n", k, stats.Kinds[k])
				}
			})
		},
	}
}

func newLinksCmd(format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "links [file]",
		Short: "List outbound references in document order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			links, err := markwalk.FromMarkdown[inspect.Links](src)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), *format, links, func(w io.Writer) {
				if len(links.Refs) == 0 {
					fmt.Fprintln(w, "No references found.")
					return
				}
				for _, ref := range links.Refs {
					if ref.Title != "" {
						fmt.Fprintf(w, "%-9s %s (%s)\n", ref.Kind, ref.Target, ref.Title)
					} else {
						fmt.Fprintf(w, "%-9s %s\n", ref.Kind, ref.Target)
					}
				}
			})
		},
	}
}

func newOutlineCmd(format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "outline [file]",
		Short: "Show the heading hierarchy",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			outline, err := markwalk.FromMarkdown[inspect.Outline](src)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), *format, outline, func(w io.Writer) {
				for _, s := range outline.Sections {
					fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", s.Level-1), s.Title)
				}
			})
		},
	}
}

func newTasksCmd(format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks [file]",
		Short: "List task items and their completion state",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			tasks, err := markwalk.FromMarkdown[inspect.Tasks](src)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), *format, tasks, func(w io.Writer) {
				for _, item := range tasks.Items {
					mark := " "
					if item.Done {
						mark = "x"
					}
					fmt.Fprintf(w, "[%s] %s\n", mark, item.Text)
				}
			})
		},
	}
}

// emit writes v in the requested format; the text callback handles the
// human-readable default.
func emit(w io.Writer, format string, v any, text func(io.Writer)) error {
	switch format {
	case "text":
		text(w)
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		out, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}
