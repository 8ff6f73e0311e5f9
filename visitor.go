package markwalk

import (
	mathjax "github.com/litao91/goldmark-mathjax"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"go.abhg.dev/goldmark/wikilink"
)

// Visitor receives one callback per node kind during a walk. Every kind in
// the tree produced by Parse maps to exactly one method here. A method
// returning a non-nil error aborts the walk immediately; no later node is
// visited.
//
// Implementations should embed Base and override only the methods they care
// about. Kinds whose content lives in source segments rather than on the
// node itself (text, code, raw HTML, math) also receive the extracted bytes,
// so handlers never need to hold the source slice. The byte slices alias the
// parsed source and must be copied if retained.
type Visitor interface {
	// Block kinds.
	VisitDocument(n *ast.Document) error
	VisitTextBlock(n *ast.TextBlock) error
	VisitParagraph(n *ast.Paragraph) error
	VisitHeading(n *ast.Heading) error
	VisitBlockquote(n *ast.Blockquote) error
	VisitCodeBlock(n *ast.CodeBlock, code []byte) error
	VisitFencedCodeBlock(n *ast.FencedCodeBlock, language, code []byte) error
	VisitHTMLBlock(n *ast.HTMLBlock, html []byte) error
	VisitList(n *ast.List) error
	VisitListItem(n *ast.ListItem) error
	VisitThematicBreak(n *ast.ThematicBreak) error

	// Inline kinds.
	VisitText(n *ast.Text, text []byte) error
	VisitString(n *ast.String, value []byte) error
	VisitCodeSpan(n *ast.CodeSpan) error
	VisitEmphasis(n *ast.Emphasis) error
	VisitLink(n *ast.Link) error
	VisitImage(n *ast.Image) error
	VisitAutoLink(n *ast.AutoLink, url []byte) error
	VisitRawHTML(n *ast.RawHTML, html []byte) error

	// Extension kinds: tables, strikethrough, task lists, footnotes,
	// definition lists.
	VisitTable(n *east.Table) error
	VisitTableHeader(n *east.TableHeader) error
	VisitTableRow(n *east.TableRow) error
	VisitTableCell(n *east.TableCell) error
	VisitStrikethrough(n *east.Strikethrough) error
	VisitTaskCheckBox(n *east.TaskCheckBox) error
	VisitFootnote(n *east.Footnote) error
	VisitFootnoteLink(n *east.FootnoteLink) error
	VisitFootnoteBacklink(n *east.FootnoteBacklink) error
	VisitFootnoteList(n *east.FootnoteList) error
	VisitDefinitionList(n *east.DefinitionList) error
	VisitDefinitionTerm(n *east.DefinitionTerm) error
	VisitDefinitionDescription(n *east.DefinitionDescription) error

	// Wiki links and math.
	VisitWikiLink(n *wikilink.Node) error
	VisitMathBlock(n *mathjax.MathBlock, math []byte) error
	VisitInlineMath(n *mathjax.InlineMath, math []byte) error
}

// MetaVisitor is implemented by visitors that want the document's YAML
// front matter. FromMarkdown calls VisitMeta once, before the walk starts,
// and only when the input carries a front matter block. Front matter is
// document metadata in goldmark, not a tree node, which is why it arrives
// outside the Visitor contract.
type MetaVisitor interface {
	VisitMeta(meta map[string]interface{}) error
}

// Base implements every Visitor method as a no-op returning nil. Embed it
// to implement only the kinds a visitor cares about.
type Base struct{}

var _ Visitor = (*Base)(nil)

func (Base) VisitDocument(*ast.Document) error { return nil }
func (Base) VisitTextBlock(*ast.TextBlock) error { return nil }
func (Base) VisitParagraph(*ast.Paragraph) error { return nil }
func (Base) VisitHeading(*ast.Heading) error { return nil }
func (Base) VisitBlockquote(*ast.Blockquote) error { return nil }
func (Base) VisitCodeBlock(*ast.CodeBlock, []byte) error { return nil }
func (Base) VisitFencedCodeBlock(*ast.FencedCodeBlock, []byte, []byte) error { return nil }
func (Base) VisitHTMLBlock(*ast.HTMLBlock, []byte) error { return nil }
func (Base) VisitList(*ast.List) error { return nil }
func (Base) VisitListItem(*ast.ListItem) error { return nil }
func (Base) VisitThematicBreak(*ast.ThematicBreak) error { return nil }
func (Base) VisitText(*ast.Text, []byte) error { return nil }
func (Base) VisitString(*ast.String, []byte) error { return nil }
func (Base) VisitCodeSpan(*ast.CodeSpan) error { return nil }
func (Base) VisitEmphasis(*ast.Emphasis) error { return nil }
func (Base) VisitLink(*ast.Link) error { return nil }
func (Base) VisitImage(*ast.Image) error { return nil }
func (Base) VisitAutoLink(*ast.AutoLink, []byte) error { return nil }
func (Base) VisitRawHTML(*ast.RawHTML, []byte) error { return nil }
func (Base) VisitTable(*east.Table) error { return nil }
func (Base) VisitTableHeader(*east.TableHeader) error { return nil }
func (Base) VisitTableRow(*east.TableRow) error { return nil }
func (Base) VisitTableCell(*east.TableCell) error { return nil }
func (Base) VisitStrikethrough(*east.Strikethrough) error { return nil }
func (Base) VisitTaskCheckBox(*east.TaskCheckBox) error { return nil }
func (Base) VisitFootnote(*east.Footnote) error { return nil }
func (Base) VisitFootnoteLink(*east.FootnoteLink) error { return nil }
func (Base) VisitFootnoteBacklink(*east.FootnoteBacklink) error { return nil }
func (Base) VisitFootnoteList(*east.FootnoteList) error { return nil }
func (Base) VisitDefinitionList(*east.DefinitionList) error { return nil }
func (Base) VisitDefinitionTerm(*east.DefinitionTerm) error { return nil }
func (Base) VisitDefinitionDescription(*east.DefinitionDescription) error { return nil }
func (Base) VisitWikiLink(*wikilink.Node) error { return nil }
func (Base) VisitMathBlock(*mathjax.MathBlock, []byte) error { return nil }
func (Base) VisitInlineMath(*mathjax.InlineMath, []byte) error { return nil }
