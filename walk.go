package markwalk

import (
	"bytes"
	"errors"
	"fmt"

	mathjax "github.com/litao91/goldmark-mathjax"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/wikilink"
)

// ErrUnhandledKind reports a node kind outside the taxonomy produced by
// Parse. It can only occur when a walker is fed a tree built with a parser
// configuration other than this package's.
var ErrUnhandledKind = errors.New("unhandled node kind")

// Walker drives a depth-first, document-order traversal over a parsed tree.
// It is bound to the source bytes the tree was parsed from, because inline
// nodes reference their text by segment rather than owning it.
//
// A Walker holds no per-traversal state; the same Walker can run any number
// of visitors over the same tree.
type Walker struct {
	source   []byte
	metadata map[string]interface{}
}

// NewWalker returns a Walker for a tree parsed from source. Use Parse when
// you also need the parsing done; NewWalker exists for callers that manage
// their own parse step.
func NewWalker(source []byte) *Walker {
	return &Walker{source: source}
}

// Meta returns the document's decoded YAML front matter, or nil when the
// source had none or the Walker did not come from Parse.
func (w *Walker) Meta() map[string]interface{} {
	return w.metadata
}

// Walk visits n and then every descendant of n in document order, calling
// the visitor method matching each node's kind. The node itself is visited
// before its children. The first error returned by any handler stops the
// walk at once; no remaining sibling or descendant is visited and the error
// is returned to the caller unchanged.
func (w *Walker) Walk(v Visitor, n ast.Node) error {
	if err := w.dispatch(v, n); err != nil {
		return err
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if err := w.Walk(v, c); err != nil {
			return err
		}
	}
	return nil
}

// dispatch routes one node to the single handler matching its kind. The
// taxonomy is closed by the fixed parser configuration, so the default arm
// is unreachable for trees produced by Parse and fails loudly otherwise.
func (w *Walker) dispatch(v Visitor, n ast.Node) error {
	switch n := n.(type) {
	case *ast.Document:
		return v.VisitDocument(n)
	case *ast.TextBlock:
		return v.VisitTextBlock(n)
	case *ast.Paragraph:
		return v.VisitParagraph(n)
	case *ast.Heading:
		return v.VisitHeading(n)
	case *ast.Blockquote:
		return v.VisitBlockquote(n)
	case *ast.CodeBlock:
		return v.VisitCodeBlock(n, w.blockText(n))
	case *ast.FencedCodeBlock:
		return v.VisitFencedCodeBlock(n, n.Language(w.source), w.blockText(n))
	case *ast.HTMLBlock:
		return v.VisitHTMLBlock(n, w.htmlBlockText(n))
	case *ast.List:
		return v.VisitList(n)
	case *ast.ListItem:
		return v.VisitListItem(n)
	case *ast.ThematicBreak:
		return v.VisitThematicBreak(n)

	case *ast.Text:
		return v.VisitText(n, n.Segment.Value(w.source))
	case *ast.String:
		return v.VisitString(n, n.Value)
	case *ast.CodeSpan:
		return v.VisitCodeSpan(n)
	case *ast.Emphasis:
		return v.VisitEmphasis(n)
	case *ast.Link:
		return v.VisitLink(n)
	case *ast.Image:
		return v.VisitImage(n)
	case *ast.AutoLink:
		return v.VisitAutoLink(n, n.URL(w.source))
	case *ast.RawHTML:
		return v.VisitRawHTML(n, w.segmentsText(n.Segments))

	case *east.Table:
		return v.VisitTable(n)
	case *east.TableHeader:
		return v.VisitTableHeader(n)
	case *east.TableRow:
		return v.VisitTableRow(n)
	case *east.TableCell:
		return v.VisitTableCell(n)
	case *east.Strikethrough:
		return v.VisitStrikethrough(n)
	case *east.TaskCheckBox:
		return v.VisitTaskCheckBox(n)
	case *east.Footnote:
		return v.VisitFootnote(n)
	case *east.FootnoteLink:
		return v.VisitFootnoteLink(n)
	case *east.FootnoteBacklink:
		return v.VisitFootnoteBacklink(n)
	case *east.FootnoteList:
		return v.VisitFootnoteList(n)
	case *east.DefinitionList:
		return v.VisitDefinitionList(n)
	case *east.DefinitionTerm:
		return v.VisitDefinitionTerm(n)
	case *east.DefinitionDescription:
		return v.VisitDefinitionDescription(n)

	case *wikilink.Node:
		return v.VisitWikiLink(n)
	case *mathjax.MathBlock:
		return v.VisitMathBlock(n, w.blockText(n))
	case *mathjax.InlineMath:
		return v.VisitInlineMath(n, w.childText(n))

	default:
		return fmt.Errorf("markwalk: %w: %s", ErrUnhandledKind, n.Kind())
	}
}

// blockText joins a block node's source lines.
func (w *Walker) blockText(n ast.Node) []byte {
	lines := n.Lines()
	if lines.Len() == 1 {
		line := lines.At(0)
		return line.Value(w.source)
	}
	var buf bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(w.source))
	}
	return buf.Bytes()
}

// htmlBlockText joins an HTML block's lines including the closure line of
// blocks that carry one (e.g. a closing comment marker).
func (w *Walker) htmlBlockText(n *ast.HTMLBlock) []byte {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(w.source))
	}
	if n.HasClosure() {
		buf.Write(n.ClosureLine.Value(w.source))
	}
	return buf.Bytes()
}

func (w *Walker) segmentsText(segments *text.Segments) []byte {
	var buf bytes.Buffer
	for i := 0; i < segments.Len(); i++ {
		segment := segments.At(i)
		buf.Write(segment.Value(w.source))
	}
	return buf.Bytes()
}

// childText concatenates the text segments directly under n. Used for
// kinds whose content is stored as raw text children.
func (w *Walker) childText(n ast.Node) []byte {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(w.source))
		}
	}
	return buf.Bytes()
}
