// Package markup is a framework-free HTML tree: built once as plain data,
// then read by independent passes (serialization, class harvesting, debugging).
package markup

import "strings"

// Node is an element or a text node
type Node interface {
	Part
	isNode()
}

// Attribute is one element attribute. Bare attributes carry no value ("required").
type Attribute struct {
	Key  string
	Val  string
	Bare bool
}

// Element is an HTML element with ordered attributes and class list
type Element struct {
	Tag      string
	Attrs    []Attribute
	Classes  []string
	Children []Node
}

// Text is escaped character data
type Text string

func (*Element) isNode() {}
func (Text) isNode()     {}

// Attr returns the value of the named attribute
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr replaces or appends an attribute
func (e *Element) SetAttr(key, val string) {
	for i, a := range e.Attrs {
		if a.Key == key {
			e.Attrs[i] = Attribute{Key: key, Val: val}
			return
		}
	}
	e.Attrs = append(e.Attrs, Attribute{Key: key, Val: val})
}

// AddClass appends classes from whitespace-separated lists
func (e *Element) AddClass(classes ...string) {
	for _, c := range classes {
		e.Classes = append(e.Classes, strings.Fields(c)...)
	}
}

// Append adds child nodes
func (e *Element) Append(children ...Node) {
	e.Children = append(e.Children, children...)
}

// Find returns the first descendant (or e itself) with the given tag
func (e *Element) Find(tag string) *Element {
	var found *Element
	Walk(e, func(n Node) bool {
		if found != nil {
			return false
		}
		if el, ok := n.(*Element); ok && el.Tag == tag {
			found = el
			return false
		}
		return true
	})
	return found
}

// EachClass visits the class list of every element in pre-order
func (e *Element) EachClass(fn func(class string)) {
	Walk(e, func(n Node) bool {
		if el, ok := n.(*Element); ok {
			for _, c := range el.Classes {
				fn(c)
			}
		}
		return true
	})
}

// Walk visits n and its descendants depth-first in pre-order.
// Returning false from fn skips the node's children.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	if el, ok := n.(*Element); ok {
		for _, c := range el.Children {
			Walk(c, fn)
		}
	}
}
