package markup

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render writes n as HTML. Text and attribute values are escaped.
func Render(w io.Writer, n Node) error {
	if err := html.Render(w, toHTML(n)); err != nil {
		return fmt.Errorf("render %s: %w", describe(n), err)
	}
	return nil
}

// RenderDocument writes root as a complete document with an HTML5 doctype
func RenderDocument(w io.Writer, root *Element) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(toHTML(root))
	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	return nil
}

// String renders n, returning "" when rendering fails
func String(n Node) string {
	var b strings.Builder
	if err := Render(&b, n); err != nil {
		return ""
	}
	return b.String()
}

// toHTML converts the tree into x/net/html nodes
func toHTML(n Node) *html.Node {
	switch v := n.(type) {
	case Text:
		return &html.Node{Type: html.TextNode, Data: string(v)}
	case *Element:
		hn := &html.Node{
			Type:     html.ElementNode,
			Data:     v.Tag,
			DataAtom: atom.Lookup([]byte(v.Tag)),
		}
		if len(v.Classes) > 0 {
			hn.Attr = append(hn.Attr, html.Attribute{Key: "class", Val: strings.Join(v.Classes, " ")})
		}
		for _, a := range v.Attrs {
			hn.Attr = append(hn.Attr, html.Attribute{Key: a.Key, Val: a.Val})
		}
		for _, c := range v.Children {
			hn.AppendChild(toHTML(c))
		}
		return hn
	}
	return &html.Node{Type: html.CommentNode}
}

func describe(n Node) string {
	if el, ok := n.(*Element); ok {
		return "<" + el.Tag + ">"
	}
	return "text"
}
