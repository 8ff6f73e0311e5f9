package inspect

import (
	"strconv"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"go.abhg.dev/goldmark/wikilink"

	"github.com/dgallion1/markwalk"
)

// Ref is one outbound reference found in a document.
type Ref struct {
	Kind   string `json:"kind" yaml:"kind"`
	Target string `json:"target" yaml:"target"`
	Title  string `json:"title,omitempty" yaml:"title,omitempty"`
}

// Links collects every outbound reference in document order: links,
// autolinks, images, wiki links, and footnote references.
type Links struct {
	markwalk.Base

	Refs []Ref `json:"refs" yaml:"refs"`
}

func (l *Links) add(r Ref) error {
	l.Refs = append(l.Refs, r)
	return nil
}

func (l *Links) VisitLink(n *ast.Link) error {
	return l.add(Ref{Kind: "link", Target: string(n.Destination), Title: string(n.Title)})
}

func (l *Links) VisitImage(n *ast.Image) error {
	return l.add(Ref{Kind: "image", Target: string(n.Destination), Title: string(n.Title)})
}

func (l *Links) VisitAutoLink(_ *ast.AutoLink, url []byte) error {
	return l.add(Ref{Kind: "autolink", Target: string(url)})
}

func (l *Links) VisitWikiLink(n *wikilink.Node) error {
	return l.add(Ref{Kind: "wikilink", Target: string(n.Target)})
}

func (l *Links) VisitFootnoteLink(n *east.FootnoteLink) error {
	return l.add(Ref{Kind: "footnote", Target: strconv.Itoa(n.Index)})
}
