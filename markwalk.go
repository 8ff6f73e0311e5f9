// Package markwalk walks markdown syntax trees produced by goldmark.
//
// Implement Visitor (usually by embedding Base and overriding a handful of
// methods), then either hand FromMarkdown a markdown source to get a
// populated value back, or call Parse and drive the Walker yourself over a
// tree you already hold.
//
//	type imageCount struct {
//		markwalk.Base
//		n int
//	}
//
//	func (c *imageCount) VisitImage(*ast.Image) error {
//		c.n++
//		return nil
//	}
//
//	count, err := markwalk.FromMarkdown[imageCount](source)
//
// The parser configuration is fixed: GFM tables, strikethrough, autolinks
// and task lists, footnotes, definition lists, YAML front matter, wiki
// links, and math spans/blocks are always enabled. Callers cannot tune the
// extension set; the visitor taxonomy is closed over exactly the kinds this
// configuration can produce.
package markwalk

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	mathjax "github.com/litao91/goldmark-mathjax"
	meta "github.com/yuin/goldmark-meta"
	"go.abhg.dev/goldmark/wikilink"
)

// markdown is the shared parser with the fixed extension set. goldmark
// keeps per-parse state in the parser.Context, so one instance serves all
// calls.
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		extension.Linkify,
		extension.TaskList,
		extension.Footnote,
		extension.DefinitionList,
		meta.Meta,
		mathjax.MathJax,
		&wikilink.Extender{},
	),
)

// Parse parses markdown source with the fixed extension configuration and
// returns the document root together with a Walker bound to the source.
// This is the low-level entry point for callers that manage their own
// accumulator or want to walk a subtree; most callers want FromMarkdown.
func Parse(source []byte) (ast.Node, *Walker) {
	ctx := parser.NewContext()
	doc := markdown.Parser().Parse(text.NewReader(source), parser.WithContext(ctx))
	return doc, &Walker{source: source, metadata: meta.Get(ctx)}
}

// visitorOf constrains PT to be the pointer type of T and a Visitor, so
// FromMarkdown can start from a zero value.
type visitorOf[T any] interface {
	Visitor
	*T
}

// FromMarkdown parses source, walks the tree with a zero-value T, and
// returns the populated value. T's pointer type must implement Visitor; the
// zero value of T must be a valid initial state.
//
// If *T also implements MetaVisitor and the source carries YAML front
// matter, VisitMeta runs once before the walk.
//
// On error the walk stops at the failing node and the error is returned as
// the handler produced it. The partially populated value is discarded;
// handlers that need the partial state on failure should record it in the
// error or use Parse and Walk directly.
func FromMarkdown[T any, PT visitorOf[T]](source []byte) (*T, error) {
	acc := new(T)
	v := PT(acc)

	doc, w := Parse(source)
	if mv, ok := any(v).(MetaVisitor); ok && len(w.Meta()) > 0 {
		if err := mv.VisitMeta(w.Meta()); err != nil {
			return nil, err
		}
	}
	if err := w.Walk(v, doc); err != nil {
		return nil, err
	}
	return acc, nil
}
