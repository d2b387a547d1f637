// Package dom models rendered views as patchable node trees. Markup is
// parsed into detached trees which either replace a container's content
// wholesale or are reconciled onto it in place.
package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NewContainer returns an empty container element to render into.
func NewContainer() *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: atom.Div, Data: "div"}
}

// Parse parses markup into a detached container tree.
func Parse(markup string) (*html.Node, error) {
	container := NewContainer()
	nodes, err := html.ParseFragment(strings.NewReader(markup), NewContainer())
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// Clear removes every child of the container.
func Clear(container *html.Node) {
	for container.FirstChild != nil {
		container.RemoveChild(container.FirstChild)
	}
}

// Render replaces the container's content with freshly parsed markup. No
// diffing; this is the first-display and error path.
func Render(container *html.Node, markup string) error {
	next, err := Parse(markup)
	if err != nil {
		return err
	}
	Clear(container)
	for next.FirstChild != nil {
		child := next.FirstChild
		next.RemoveChild(child)
		container.AppendChild(child)
	}
	return nil
}

// Markup serializes the container's content back to markup.
func Markup(container *html.Node) string {
	var b strings.Builder
	for c := container.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return ""
		}
	}
	return b.String()
}

// Elements collects the descendant elements of root in document order,
// excluding root itself.
func Elements(root *html.Node) []*html.Node {
	var els []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				els = append(els, c)
			}
			walk(c)
		}
	}
	walk(root)
	return els
}

// Text is the concatenated text content of the subtree.
func Text(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// SetText replaces the node's children with a single text node.
func SetText(n *html.Node, text string) {
	Clear(n)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Attr returns the value of the named attribute.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or overwrites the named attribute.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// Equal reports deep node equality: type, tag, attribute set and children,
// in order.
func Equal(a, b *html.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type || a.Data != b.Data {
		return false
	}
	if len(a.Attr) != len(b.Attr) {
		return false
	}
	for _, attr := range a.Attr {
		v, ok := Attr(b, attr.Key)
		if !ok || v != attr.Val {
			return false
		}
	}
	ac, bc := a.FirstChild, b.FirstChild
	for ac != nil && bc != nil {
		if !Equal(ac, bc) {
			return false
		}
		ac, bc = ac.NextSibling, bc.NextSibling
	}
	return ac == nil && bc == nil
}

// Flatten projects the tree to readable text for terminal output. Block
// elements break lines; inline text is joined with single spaces.
func Flatten(root *html.Node) string {
	var lines []string
	var current strings.Builder

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			lines = append(lines, s)
		}
		current.Reset()
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				if current.Len() > 0 {
					current.WriteString(" ")
				}
				current.WriteString(s)
			}
			return
		}
		block := isBlock(n)
		if block {
			flush()
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if block {
			flush()
		}
	}
	walk(root)
	flush()
	return strings.Join(lines, "\n")
}

func isBlock(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.Div, atom.P, atom.Li, atom.Ul, atom.Ol, atom.H1, atom.H2, atom.H3,
		atom.H4, atom.H5, atom.H6, atom.Button, atom.Figure, atom.Section:
		return true
	}
	return false
}
