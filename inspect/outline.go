package inspect

import (
	"github.com/yuin/goldmark/ast"

	"github.com/dgallion1/markwalk"
)

// Section is one heading in a document outline.
type Section struct {
	Level int    `json:"level" yaml:"level"`
	Title string `json:"title" yaml:"title"`
}

// Outline collects the heading hierarchy in document order. Heading titles
// are assembled from the text nodes visited after each heading: the walk is
// pre-order with no post-children hook, so the open heading is remembered
// and text is attributed to it by ancestry.
type Outline struct {
	markwalk.Base

	Sections []Section `json:"sections" yaml:"sections"`

	open ast.Node
}

func (o *Outline) VisitHeading(n *ast.Heading) error {
	o.Sections = append(o.Sections, Section{Level: n.Level})
	o.open = n
	return nil
}

func (o *Outline) VisitText(n *ast.Text, text []byte) error {
	if o.open == nil || !hasAncestor(n, o.open) {
		return nil
	}
	s := &o.Sections[len(o.Sections)-1]
	s.Title += string(text)
	if n.SoftLineBreak() || n.HardLineBreak() {
		s.Title += " "
	}
	return nil
}

// hasAncestor reports whether ancestor is on n's parent chain.
func hasAncestor(n, ancestor ast.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p == ancestor {
			return true
		}
	}
	return false
}
