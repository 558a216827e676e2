package markup

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FromHTML parses an HTML fragment into nodes. Comments are dropped and
// class attributes become class lists.
func FromHTML(fragment string) ([]Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	parsed, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}

	nodes := make([]Node, 0, len(parsed))
	for _, hn := range parsed {
		if n := fromHTML(hn); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes, nil
}

func fromHTML(hn *html.Node) Node {
	switch hn.Type {
	case html.TextNode:
		return Text(hn.Data)
	case html.ElementNode:
		el := &Element{Tag: hn.Data}
		for _, a := range hn.Attr {
			if a.Key == "class" {
				el.AddClass(a.Val)
				continue
			}
			el.Attrs = append(el.Attrs, Attribute{Key: a.Key, Val: a.Val})
		}
		for c := hn.FirstChild; c != nil; c = c.NextSibling {
			if n := fromHTML(c); n != nil {
				el.Children = append(el.Children, n)
			}
		}
		return el
	}
	return nil
}

var markdown = goldmark.New()

// Markdown renders CommonMark source to nodes. Raw HTML in the source is
// not passed through.
func Markdown(src string) ([]Node, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}
	return FromHTML(buf.String())
}
