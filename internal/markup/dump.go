package markup

import (
	"strconv"
	"strings"

	"github.com/xlab/treeprint"
)

const dumpTextLimit = 40

// Dump renders the tree outline for debugging:
//
//	main.container.flex
//	└── h1.text-xl "Games"
func Dump(root Node) string {
	tree := treeprint.NewWithRoot(label(root))
	if el, ok := root.(*Element); ok {
		dumpChildren(tree, el)
	}
	return tree.String()
}

func dumpChildren(branch treeprint.Tree, el *Element) {
	for _, c := range el.Children {
		child, ok := c.(*Element)
		if !ok || len(child.Children) == 0 {
			branch.AddNode(label(c))
			continue
		}
		dumpChildren(branch.AddBranch(label(c)), child)
	}
}

func label(n Node) string {
	switch v := n.(type) {
	case Text:
		s := strings.TrimSpace(string(v))
		if r := []rune(s); len(r) > dumpTextLimit {
			s = string(r[:dumpTextLimit]) + "…"
		}
		return strconv.Quote(s)
	case *Element:
		var b strings.Builder
		b.WriteString(v.Tag)
		for _, c := range v.Classes {
			b.WriteByte('.')
			b.WriteString(c)
		}
		for _, a := range v.Attrs {
			b.WriteString(" [")
			b.WriteString(a.Key)
			if !a.Bare {
				b.WriteByte('=')
				b.WriteString(a.Val)
			}
			b.WriteByte(']')
		}
		return b.String()
	}
	return "?"
}
