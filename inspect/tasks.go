package inspect

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/dgallion1/markwalk"
)

// Task is one task-list item.
type Task struct {
	Done bool   `json:"done" yaml:"done"`
	Text string `json:"text" yaml:"text"`
}

// Tasks collects task-list items with their completion state. Item text is
// gathered from the text nodes inside the checkbox's list item, the same
// open-node technique Outline uses for heading titles. A nested task item
// takes over text collection from its parent at the point it appears, which
// matches document order.
type Tasks struct {
	markwalk.Base

	Items []Task `json:"items" yaml:"items"`

	open ast.Node
}

func (t *Tasks) VisitTaskCheckBox(n *east.TaskCheckBox) error {
	t.Items = append(t.Items, Task{Done: n.IsChecked})
	t.open = listItemOf(n)
	return nil
}

func (t *Tasks) VisitText(n *ast.Text, text []byte) error {
	if t.open == nil || len(t.Items) == 0 || !hasAncestor(n, t.open) {
		return nil
	}
	item := &t.Items[len(t.Items)-1]
	chunk := string(text)
	if item.Text == "" {
		chunk = strings.TrimLeft(chunk, " \t")
	}
	item.Text += chunk
	if n.SoftLineBreak() || n.HardLineBreak() {
		item.Text += " "
	}
	return nil
}

// listItemOf climbs from a checkbox to its enclosing list item. Falls back
// to the direct parent if the tree shape is unexpected.
func listItemOf(n ast.Node) ast.Node {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if _, ok := p.(*ast.ListItem); ok {
			return p
		}
	}
	return n.Parent()
}
