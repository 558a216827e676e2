package utility

import (
	"fmt"
	"strings"
)

// Resolver turns parsed tokens into style rules using a rule table
type Resolver struct {
	table *Table
	dark  DarkMode
}

// NewResolver creates a resolver. A nil table means DefaultTable.
func NewResolver(table *Table, dark DarkMode) *Resolver {
	if table == nil {
		table = DefaultTable()
	}
	if dark == "" {
		dark = DarkMedia
	}
	return &Resolver{table: table, dark: dark}
}

// DarkMode returns the configured dark strategy
func (r *Resolver) DarkMode() DarkMode {
	return r.dark
}

// Resolve maps a token to its style rule. Tokens whose utility is not in the
// table, or that carry an arbitrary value the utility does not accept,
// report false and produce no CSS.
func (r *Resolver) Resolve(tok Token) (StyleRule, bool) {
	decls, ok := r.declarations(tok)
	if !ok {
		return StyleRule{}, false
	}
	selector, media := r.scope(tok)
	return StyleRule{
		Selector:     selector,
		MediaQuery:   media,
		Declarations: decls,
	}, true
}

// Known reports whether a raw class would produce CSS
func (r *Resolver) Known(raw string) bool {
	tok, ok := Parse(raw)
	if !ok {
		return false
	}
	_, ok = r.declarations(tok)
	return ok
}

func (r *Resolver) declarations(tok Token) ([]Declaration, bool) {
	if tok.Arbitrary {
		t, ok := r.table.entries[tok.Utility]
		if !ok || t.arbitrary == nil {
			return nil, false
		}
		return t.arbitrary(tok.Value), true
	}

	if t, ok := r.table.entries[tok.Utility]; ok && t.decls != nil {
		return append([]Declaration(nil), t.decls...), true
	}

	// Opacity modifier on a color: "bg-black/50"
	if i := strings.LastIndexByte(tok.Utility, '/'); i > 0 {
		t, ok := r.table.entries[tok.Utility[:i]]
		if ok && t.tint != nil {
			return t.tint(tok.Utility[i+1:])
		}
	}
	return nil, false
}

// scope builds the selector and media query for a token's variants.
// Pseudo-states append in token order. Media conditions are joined with
// "and": breakpoints first in token order, then the dark condition.
func (r *Resolver) scope(tok Token) (selector, media string) {
	selector = "." + EscapeClass(tok.Raw)
	var conditions []string
	dark := false

	for _, v := range tok.Variants {
		switch v.Kind {
		case KindBreakpoint:
			conditions = appendUnique(conditions, fmt.Sprintf("(min-width: %dpx)", Breakpoints[v.Name]))
		case KindColorScheme:
			dark = true
		case KindPseudoState:
			selector += pseudoSelectors[v.Name]
		}
	}

	if dark {
		switch r.dark {
		case DarkClass:
			selector = "." + DarkRootClass + " " + selector
		default:
			conditions = append(conditions, darkMediaQuery)
		}
	}
	return selector, strings.Join(conditions, " and ")
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
