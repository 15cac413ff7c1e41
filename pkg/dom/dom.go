// Package dom is a small element API over golang.org/x/net/html trees. The
// dashboard views mutate such a tree in place and the web front end renders
// regions of it back to HTML.
package dom

import (
	"bytes"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type Node = html.Node

// Parse parses a complete HTML document.
func Parse(src string) (*Node, error) {
	return html.Parse(strings.NewReader(src))
}

// Element builds an element. attrs are key, value pairs.
func Element(tag string, attrs ...string) *Node {
	n := &Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func Text(data string) *Node {
	return &Node{Type: html.TextNode, Data: data}
}

// Append adds children to parent, detaching them from any previous parent.
func Append(parent *Node, children ...*Node) *Node {
	for _, c := range children {
		if c.Parent != nil {
			c.Parent.RemoveChild(c)
		}
		parent.AppendChild(c)
	}
	return parent
}

// Empty removes every child of n.
func Empty(n *Node) {
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
}

// Remove detaches n from the document.
func Remove(n *Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

func Children(n *Node) []*Node {
	items := make([]*Node, 0, 8)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			items = append(items, c)
		}
	}
	return items
}

func Attr(n *Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func AttrOr(n *Node, key, value string) string {
	if v, ok := Attr(n, key); ok {
		return v
	}
	return value
}

func SetAttr(n *Node, key, value string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

func DelAttr(n *Node, key string) {
	attrs := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		attrs = append(attrs, a)
	}
	n.Attr = attrs
}

func HasAttr(n *Node, key string) bool {
	_, ok := Attr(n, key)
	return ok
}

func Hide(n *Node) {
	SetAttr(n, "hidden", "")
}

func Show(n *Node) {
	DelAttr(n, "hidden")
}

func Visible(n *Node) bool {
	return !HasAttr(n, "hidden")
}

// TextContent concatenates the text below n.
func TextContent(n *Node) string {
	var buf bytes.Buffer
	var walk func(*Node)
	walk = func(c *Node) {
		if c.Type == html.TextNode {
			buf.WriteString(c.Data)
		}
		for cc := c.FirstChild; cc != nil; cc = cc.NextSibling {
			walk(cc)
		}
	}
	walk(n)
	return buf.String()
}

// Find returns the first element below root matching the CSS selector.
func Find(root *Node, selector string) *Node {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	return sel.MatchFirst(root)
}

func FindAll(root *Node, selector string) []*Node {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	return sel.MatchAll(root)
}

// Render returns the outer HTML of n.
func Render(n *Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}
