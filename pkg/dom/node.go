// Package dom is the minimal document layer widgets render into: an anchor
// element backed by golang.org/x/net/html nodes, class and attribute
// helpers, and delegated event bindings scoped to the anchor.
package dom

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NewElement builds a detached element node.
func NewElement(tag string, classes ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	for _, c := range classes {
		AddClass(n, c)
	}
	return n
}

// Attr returns the value of key on n.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets key on n, replacing any existing value.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes key from n.
func RemoveAttr(n *html.Node, key string) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key != key {
			out = append(out, a)
		}
	}
	n.Attr = out
}

// Classes returns the class list of n.
func Classes(n *html.Node) []string {
	v, _ := Attr(n, "class")
	return strings.Fields(v)
}

// HasClass reports whether n carries class c.
func HasClass(n *html.Node, c string) bool {
	for _, have := range Classes(n) {
		if have == c {
			return true
		}
	}
	return false
}

// AddClass appends c to n unless it is already present.
func AddClass(n *html.Node, c string) {
	if HasClass(n, c) {
		return
	}
	SetAttr(n, "class", strings.TrimSpace(strings.Join(append(Classes(n), c), " ")))
}

// RemoveClass drops c from n.
func RemoveClass(n *html.Node, c string) {
	have := Classes(n)
	out := have[:0]
	for _, cls := range have {
		if cls != c {
			out = append(out, cls)
		}
	}
	if len(out) == 0 {
		RemoveAttr(n, "class")
		return
	}
	SetAttr(n, "class", strings.Join(out, " "))
}

// ToggleClass adds c when on is true and removes it otherwise.
func ToggleClass(n *html.Node, c string, on bool) {
	if on {
		AddClass(n, c)
	} else {
		RemoveClass(n, c)
	}
}

// Value returns the value attribute of an input element.
func Value(n *html.Node) string {
	v, _ := Attr(n, "value")
	return v
}

// SetValue writes the value attribute of an input element.
func SetValue(n *html.Node, v string) {
	SetAttr(n, "value", v)
}

// SetText replaces the children of n with a single text node.
func SetText(n *html.Node, text string) {
	removeChildren(n)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Text concatenates the text content under n.
func Text(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		return true
	})
	return b.String()
}

// SetInnerHTML parses markup as a fragment and makes it the content of n.
func SetInnerHTML(n *html.Node, markup string) error {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	if n.Type == html.ElementNode {
		ctx = &html.Node{Type: html.ElementNode, Data: n.Data, DataAtom: n.DataAtom}
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return fmt.Errorf("parse fragment: %w", err)
	}
	removeChildren(n)
	for _, c := range nodes {
		n.AppendChild(c)
	}
	return nil
}

// AppendHTML parses markup as a fragment and appends it to n, returning the
// top-level nodes that were added.
func AppendHTML(n *html.Node, markup string) ([]*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: n.Data, DataAtom: n.DataAtom}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}
	for _, c := range nodes {
		n.AppendChild(c)
	}
	return nodes, nil
}

// InnerHTML renders the children of n.
func InnerHTML(n *html.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&buf, c)
	}
	return buf.String()
}

// OuterHTML renders n including its own tag.
func OuterHTML(n *html.Node) string {
	var buf bytes.Buffer
	_ = html.Render(&buf, n)
	return buf.String()
}

// Matches reports whether n satisfies selector. Supported selectors are
// ".class", "tag" and "tag.class".
func Matches(n *html.Node, selector string) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	tag, class, _ := strings.Cut(selector, ".")
	if tag != "" && n.Data != tag {
		return false
	}
	if class != "" && !HasClass(n, class) {
		return false
	}
	return tag != "" || class != ""
}

// Find returns the first descendant of n matching selector.
func Find(n *html.Node, selector string) *html.Node {
	var found *html.Node
	walk(n, func(c *html.Node) bool {
		if c != n && Matches(c, selector) {
			found = c
			return false
		}
		return true
	})
	return found
}

// FindAll returns every descendant of n matching selector in document order.
func FindAll(n *html.Node, selector string) []*html.Node {
	var out []*html.Node
	walk(n, func(c *html.Node) bool {
		if c != n && Matches(c, selector) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Contains reports whether child is n or one of its descendants.
func Contains(n, child *html.Node) bool {
	for c := child; c != nil; c = c.Parent {
		if c == n {
			return true
		}
	}
	return false
}

func removeChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
}

// walk visits n and its descendants depth first until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}
