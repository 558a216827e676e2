package markup

// Part configures an element under construction: attributes, classes or children
type Part interface {
	apply(e *Element)
}

type partFunc func(e *Element)

func (f partFunc) apply(e *Element) { f(e) }

func (e *Element) apply(parent *Element) { parent.Children = append(parent.Children, e) }
func (t Text) apply(parent *Element)     { parent.Children = append(parent.Children, t) }

// El builds an element
//
//	El("a", Attr("href", "/games"), Class("hover:text-violet-500"), Text("Games"))
func El(tag string, parts ...Part) *Element {
	e := &Element{Tag: tag}
	for _, p := range parts {
		if p != nil {
			p.apply(e)
		}
	}
	return e
}

// Class appends whitespace-separated class lists
func Class(classes ...string) Part {
	return partFunc(func(e *Element) { e.AddClass(classes...) })
}

// Attr sets an attribute
func Attr(key, val string) Part {
	return partFunc(func(e *Element) { e.SetAttr(key, val) })
}

// Bool sets a bare boolean attribute
func Bool(key string) Part {
	return partFunc(func(e *Element) {
		e.Attrs = append(e.Attrs, Attribute{Key: key, Bare: true})
	})
}

// Children appends a list of nodes
func Children(nodes ...Node) Part {
	return partFunc(func(e *Element) { e.Append(nodes...) })
}

// Group combines parts into one
func Group(parts ...Part) Part {
	return partFunc(func(e *Element) {
		for _, p := range parts {
			if p != nil {
				p.apply(e)
			}
		}
	})
}

// If returns part when cond holds, otherwise nothing
func If(cond bool, part Part) Part {
	if !cond {
		return nil
	}
	return part
}

// Each maps items to parts
func Each[T any](items []T, fn func(T) Part) Part {
	parts := make([]Part, 0, len(items))
	for _, it := range items {
		parts = append(parts, fn(it))
	}
	return Group(parts...)
}
