// Package inspect ships ready-made visitors for common markdown questions:
// node statistics, outbound references, heading outlines, and task lists.
// They double as worked examples of the markwalk.Visitor contract; each one
// embeds markwalk.Base and overrides only what it needs, and each works
// from its zero value so it can be fed straight to markwalk.FromMarkdown.
package inspect

import (
	"strings"

	mathjax "github.com/litao91/goldmark-mathjax"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"go.abhg.dev/goldmark/wikilink"

	"github.com/dgallion1/markwalk"
)

// Stats aggregates per-kind node counts plus a few document-level figures.
// It overrides every handler, which also makes it a useful smoke test that
// each kind in the taxonomy dispatches.
type Stats struct {
	markwalk.Base

	Kinds    map[string]int `json:"kinds" yaml:"kinds"`
	Nodes    int            `json:"nodes" yaml:"nodes"`
	Words    int            `json:"words" yaml:"words"`
	MaxDepth int            `json:"max_depth" yaml:"max_depth"`
}

func (s *Stats) count(n ast.Node) error {
	if s.Kinds == nil {
		s.Kinds = make(map[string]int)
	}
	s.Kinds[n.Kind().String()]++
	s.Nodes++
	if d := depth(n); d > s.MaxDepth {
		s.MaxDepth = d
	}
	return nil
}

// depth is the number of edges between n and the document root.
func depth(n ast.Node) int {
	d := 0
	for p := n.Parent(); p != nil; p = p.Parent() {
		d++
	}
	return d
}

func (s *Stats) VisitDocument(n *ast.Document) error { return s.count(n) }
func (s *Stats) VisitTextBlock(n *ast.TextBlock) error { return s.count(n) }
func (s *Stats) VisitParagraph(n *ast.Paragraph) error { return s.count(n) }
func (s *Stats) VisitHeading(n *ast.Heading) error { return s.count(n) }
func (s *Stats) VisitBlockquote(n *ast.Blockquote) error { return s.count(n) }
func (s *Stats) VisitList(n *ast.List) error { return s.count(n) }
func (s *Stats) VisitListItem(n *ast.ListItem) error { return s.count(n) }
func (s *Stats) VisitThematicBreak(n *ast.ThematicBreak) error { return s.count(n) }

func (s *Stats) VisitCodeBlock(n *ast.CodeBlock, _ []byte) error { return s.count(n) }
func (s *Stats) VisitFencedCodeBlock(n *ast.FencedCodeBlock, _, _ []byte) error {
	return s.count(n)
}
func (s *Stats) VisitHTMLBlock(n *ast.HTMLBlock, _ []byte) error { return s.count(n) }

func (s *Stats) VisitText(n *ast.Text, text []byte) error {
	s.Words += len(strings.Fields(string(text)))
	return s.count(n)
}
func (s *Stats) VisitString(n *ast.String, _ []byte) error { return s.count(n) }
func (s *Stats) VisitCodeSpan(n *ast.CodeSpan) error { return s.count(n) }
func (s *Stats) VisitEmphasis(n *ast.Emphasis) error { return s.count(n) }
func (s *Stats) VisitLink(n *ast.Link) error { return s.count(n) }
func (s *Stats) VisitImage(n *ast.Image) error { return s.count(n) }
func (s *Stats) VisitAutoLink(n *ast.AutoLink, _ []byte) error { return s.count(n) }
func (s *Stats) VisitRawHTML(n *ast.RawHTML, _ []byte) error { return s.count(n) }

func (s *Stats) VisitTable(n *east.Table) error { return s.count(n) }
func (s *Stats) VisitTableHeader(n *east.TableHeader) error { return s.count(n) }
func (s *Stats) VisitTableRow(n *east.TableRow) error { return s.count(n) }
func (s *Stats) VisitTableCell(n *east.TableCell) error { return s.count(n) }
func (s *Stats) VisitStrikethrough(n *east.Strikethrough) error { return s.count(n) }
func (s *Stats) VisitTaskCheckBox(n *east.TaskCheckBox) error { return s.count(n) }
func (s *Stats) VisitFootnote(n *east.Footnote) error { return s.count(n) }
func (s *Stats) VisitFootnoteLink(n *east.FootnoteLink) error { return s.count(n) }
func (s *Stats) VisitFootnoteBacklink(n *east.FootnoteBacklink) error { return s.count(n) }
func (s *Stats) VisitFootnoteList(n *east.FootnoteList) error { return s.count(n) }
func (s *Stats) VisitDefinitionList(n *east.DefinitionList) error { return s.count(n) }
func (s *Stats) VisitDefinitionTerm(n *east.DefinitionTerm) error { return s.count(n) }
func (s *Stats) VisitDefinitionDescription(n *east.DefinitionDescription) error {
	return s.count(n)
}

func (s *Stats) VisitWikiLink(n *wikilink.Node) error { return s.count(n) }
func (s *Stats) VisitMathBlock(n *mathjax.MathBlock, _ []byte) error { return s.count(n) }
func (s *Stats) VisitInlineMath(n *mathjax.InlineMath, _ []byte) error { return s.count(n) }
