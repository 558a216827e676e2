package utility

import (
	"sort"
	"strconv"
	"strings"
)

// template describes how one utility name becomes declarations
type template struct {
	decls     []Declaration                            // Canonical declarations, nil for value-only prefixes
	arbitrary func(value string) []Declaration         // Nil when the utility takes no bracketed value
	tint      func(alpha string) ([]Declaration, bool) // Color atoms only ("bg-black/50")
}

// Table is the immutable utility-name → declaration lookup.
// It is built once and only read afterwards, so it is safe for concurrent use.
type Table struct {
	entries map[string]template
}

var defaultTable = newTable()

// DefaultTable returns the process-wide rule table
func DefaultTable() *Table {
	return defaultTable
}

// Has reports whether name is a known utility or value prefix
func (t *Table) Has(name string) bool {
	_, ok := t.entries[name]
	return ok
}

// Len returns the number of entries
func (t *Table) Len() int {
	return len(t.entries)
}

// Names returns all entry names in sorted order
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// tableBuilder accumulates entries before the table is frozen
type tableBuilder struct {
	entries map[string]template
}

func (b *tableBuilder) static(name string, decls ...Declaration) {
	t := b.entries[name]
	t.decls = decls
	b.entries[name] = t
}

// prop registers a single-value utility over one or more properties
func (b *tableBuilder) prop(name, value string, props ...string) {
	b.static(name, fill(value, props)...)
}

// prefix registers the arbitrary-value form of a utility family ("p" for "p-[3px]")
func (b *tableBuilder) prefix(name string, props ...string) {
	b.arbitrary(name, func(v string) []Declaration { return fill(v, props) })
}

func (b *tableBuilder) arbitrary(name string, fn func(string) []Declaration) {
	t := b.entries[name]
	t.arbitrary = fn
	b.entries[name] = t
}

func (b *tableBuilder) color(name, value string, props ...string) {
	b.static(name, fill(value, props)...)
	t := b.entries[name]
	t.tint = func(alpha string) ([]Declaration, bool) {
		v, ok := withAlpha(value, alpha)
		if !ok {
			return nil, false
		}
		return fill(v, props), true
	}
	b.entries[name] = t
}

func fill(value string, props []string) []Declaration {
	decls := make([]Declaration, len(props))
	for i, p := range props {
		decls[i] = Declaration{Property: p, Value: value}
	}
	return decls
}

func decl(property, value string) Declaration {
	return Declaration{Property: property, Value: value}
}

var spacingScale = []string{
	"0", "px", "0.5", "1", "1.5", "2", "2.5", "3", "3.5", "4", "5", "6", "7", "8", "9", "10",
	"11", "12", "14", "16", "20", "24", "28", "32", "36", "40", "44", "48", "52", "56", "60",
	"64", "72", "80", "96",
}

// spacingValue converts a scale key to a length: "4" → "1rem"
func spacingValue(key string) string {
	switch key {
	case "0":
		return "0"
	case "px":
		return "1px"
	}
	n, err := strconv.ParseFloat(key, 64)
	if err != nil {
		return key
	}
	return strconv.FormatFloat(n/4, 'f', -1, 64) + "rem"
}

// spacingProps lists the utilities that accept the spacing scale
var spacingProps = []struct {
	name  string
	props []string
}{
	{"p", []string{"padding"}},
	{"px", []string{"padding-left", "padding-right"}},
	{"py", []string{"padding-top", "padding-bottom"}},
	{"pt", []string{"padding-top"}},
	{"pr", []string{"padding-right"}},
	{"pb", []string{"padding-bottom"}},
	{"pl", []string{"padding-left"}},
	{"m", []string{"margin"}},
	{"mx", []string{"margin-left", "margin-right"}},
	{"my", []string{"margin-top", "margin-bottom"}},
	{"mt", []string{"margin-top"}},
	{"mr", []string{"margin-right"}},
	{"mb", []string{"margin-bottom"}},
	{"ml", []string{"margin-left"}},
	{"gap", []string{"gap"}},
	{"gap-x", []string{"column-gap"}},
	{"gap-y", []string{"row-gap"}},
	{"w", []string{"width"}},
	{"h", []string{"height"}},
	{"size", []string{"width", "height"}},
	{"min-h", []string{"min-height"}},
	{"max-h", []string{"max-height"}},
	{"inset", []string{"inset"}},
	{"inset-x", []string{"left", "right"}},
	{"inset-y", []string{"top", "bottom"}},
	{"top", []string{"top"}},
	{"right", []string{"right"}},
	{"bottom", []string{"bottom"}},
	{"left", []string{"left"}},
}

var namedSizes = [][2]string{
	{"xs", "20rem"}, {"sm", "24rem"}, {"md", "28rem"}, {"lg", "32rem"}, {"xl", "36rem"},
	{"2xl", "42rem"}, {"3xl", "48rem"}, {"4xl", "56rem"}, {"5xl", "64rem"}, {"6xl", "72rem"},
	{"7xl", "80rem"}, {"full", "100%"}, {"prose", "65ch"},
}

var fontSizes = [][3]string{
	{"xs", "0.75rem", "1rem"},
	{"sm", "0.875rem", "1.25rem"},
	{"base", "1rem", "1.5rem"},
	{"lg", "1.125rem", "1.75rem"},
	{"xl", "1.25rem", "1.75rem"},
	{"2xl", "1.5rem", "2rem"},
	{"3xl", "1.875rem", "2.25rem"},
	{"4xl", "2.25rem", "2.5rem"},
	{"5xl", "3rem", "1"},
}

var fontWeights = [][2]string{
	{"thin", "100"}, {"extralight", "200"}, {"light", "300"}, {"normal", "400"}, {"medium", "500"},
	{"semibold", "600"}, {"bold", "700"}, {"extrabold", "800"}, {"black", "900"},
}

const ringColorVar = "--fn-ring-color"

func newTable() *Table {
	b := &tableBuilder{entries: make(map[string]template, 2048)}

	// Spacing
	for _, sp := range spacingProps {
		for _, key := range spacingScale {
			b.prop(sp.name+"-"+key, spacingValue(key), sp.props...)
		}
		b.prefix(sp.name, sp.props...)
	}
	for _, name := range []string{"m", "mx", "my", "mt", "mr", "mb", "ml", "w", "h", "inset", "top", "right", "bottom", "left"} {
		for _, sp := range spacingProps {
			if sp.name == name {
				b.prop(name+"-auto", "auto", sp.props...)
			}
		}
	}
	for _, frac := range [][2]string{{"1/2", "50%"}, {"1/3", "33.333333%"}, {"2/3", "66.666667%"}, {"1/4", "25%"}, {"3/4", "75%"}, {"full", "100%"}} {
		b.prop("w-"+frac[0], frac[1], "width")
		b.prop("h-"+frac[0], frac[1], "height")
	}
	b.prop("w-screen", "100vw", "width")
	b.prop("h-screen", "100vh", "height")
	b.prop("min-h-screen", "100vh", "min-height")
	b.prop("w-min", "min-content", "width")
	b.prop("w-max", "max-content", "width")
	b.prop("w-fit", "fit-content", "width")
	for _, s := range namedSizes {
		b.prop("min-w-"+s[0], s[1], "min-width")
		b.prop("max-w-"+s[0], s[1], "max-width")
	}
	b.prop("min-w-0", "0", "min-width")
	b.prop("max-w-none", "none", "max-width")
	b.prefix("min-w", "min-width")
	b.prefix("max-w", "max-width")
	b.static("container", decl("width", "100%"), decl("max-width", "1536px"))

	// Layout
	for _, d := range []string{"block", "inline-block", "inline", "flex", "inline-flex", "grid", "inline-grid", "contents", "table"} {
		b.prop(d, d, "display")
	}
	b.prop("hidden", "none", "display")
	for _, p := range []string{"static", "fixed", "absolute", "relative", "sticky"} {
		b.prop(p, p, "position")
	}
	for _, z := range []string{"0", "10", "20", "30", "40", "50", "auto"} {
		b.prop("z-"+z, z, "z-index")
	}
	b.prefix("z", "z-index")
	for _, o := range []string{"auto", "hidden", "scroll", "visible"} {
		b.prop("overflow-"+o, o, "overflow")
		b.prop("overflow-x-"+o, o, "overflow-x")
		b.prop("overflow-y-"+o, o, "overflow-y")
	}

	// Flexbox and grid
	b.prop("flex-row", "row", "flex-direction")
	b.prop("flex-row-reverse", "row-reverse", "flex-direction")
	b.prop("flex-col", "column", "flex-direction")
	b.prop("flex-col-reverse", "column-reverse", "flex-direction")
	b.prop("flex-wrap", "wrap", "flex-wrap")
	b.prop("flex-wrap-reverse", "wrap-reverse", "flex-wrap")
	b.prop("flex-nowrap", "nowrap", "flex-wrap")
	b.prop("flex-1", "1 1 0%", "flex")
	b.prop("flex-auto", "1 1 auto", "flex")
	b.prop("flex-initial", "0 1 auto", "flex")
	b.prop("flex-none", "none", "flex")
	b.prefix("flex", "flex")
	b.prop("grow", "1", "flex-grow")
	b.prop("grow-0", "0", "flex-grow")
	b.prop("shrink", "1", "flex-shrink")
	b.prop("shrink-0", "0", "flex-shrink")
	for _, j := range [][2]string{{"start", "flex-start"}, {"end", "flex-end"}, {"center", "center"}, {"between", "space-between"}, {"around", "space-around"}, {"evenly", "space-evenly"}} {
		b.prop("justify-"+j[0], j[1], "justify-content")
	}
	for _, a := range [][2]string{{"start", "flex-start"}, {"end", "flex-end"}, {"center", "center"}, {"baseline", "baseline"}, {"stretch", "stretch"}} {
		b.prop("items-"+a[0], a[1], "align-items")
		b.prop("self-"+a[0], a[1], "align-self")
	}
	b.prop("self-auto", "auto", "align-self")
	for n := 1; n <= 12; n++ {
		s := strconv.Itoa(n)
		b.prop("grid-cols-"+s, "repeat("+s+", minmax(0, 1fr))", "grid-template-columns")
		b.prop("col-span-"+s, "span "+s+" / span "+s, "grid-column")
	}
	b.prop("grid-cols-none", "none", "grid-template-columns")
	b.prefix("grid-cols", "grid-template-columns")
	b.prop("col-span-full", "1 / -1", "grid-column")

	// Typography
	for _, f := range fontSizes {
		b.static("text-"+f[0], decl("font-size", f[1]), decl("line-height", f[2]))
	}
	for _, w := range fontWeights {
		b.prop("font-"+w[0], w[1], "font-weight")
	}
	b.prop("font-sans", `ui-sans-serif, system-ui, sans-serif`, "font-family")
	b.prop("font-mono", `ui-monospace, SFMono-Regular, Menlo, monospace`, "font-family")
	for _, a := range []string{"left", "center", "right", "justify"} {
		b.prop("text-"+a, a, "text-align")
	}
	b.prop("underline", "underline", "text-decoration-line")
	b.prop("line-through", "line-through", "text-decoration-line")
	b.prop("no-underline", "none", "text-decoration-line")
	b.prop("italic", "italic", "font-style")
	b.prop("not-italic", "normal", "font-style")
	for _, t := range []string{"uppercase", "lowercase", "capitalize"} {
		b.prop(t, t, "text-transform")
	}
	b.static("truncate", decl("overflow", "hidden"), decl("text-overflow", "ellipsis"), decl("white-space", "nowrap"))
	for _, l := range [][2]string{{"none", "1"}, {"tight", "1.25"}, {"snug", "1.375"}, {"normal", "1.5"}, {"relaxed", "1.625"}, {"loose", "2"}} {
		b.prop("leading-"+l[0], l[1], "line-height")
	}
	b.prefix("leading", "line-height")
	for _, t := range [][2]string{{"tight", "-0.025em"}, {"normal", "0em"}, {"wide", "0.025em"}} {
		b.prop("tracking-"+t[0], t[1], "letter-spacing")
	}
	b.prefix("tracking", "letter-spacing")

	// Colors
	for name, value := range colors() {
		b.color("text-"+name, value, "color")
		b.color("bg-"+name, value, "background-color")
		b.color("border-"+name, value, "border-color")
		b.color("ring-"+name, value, ringColorVar)
	}
	b.arbitrary("text", lengthOr("font-size", "color"))
	b.prefix("bg", "background-color")

	// Borders
	b.prop("border", "1px", "border-width")
	for _, w := range []string{"0", "2", "4", "8"} {
		b.prop("border-"+w, w+"px", "border-width")
	}
	for _, side := range [][2]string{{"x", "left right"}, {"y", "top bottom"}, {"t", "top"}, {"r", "right"}, {"b", "bottom"}, {"l", "left"}} {
		var props []string
		for _, s := range strings.Fields(side[1]) {
			props = append(props, "border-"+s+"-width")
		}
		b.prop("border-"+side[0], "1px", props...)
	}
	for _, s := range []string{"solid", "dashed", "dotted", "none"} {
		b.prop("border-"+s, s, "border-style")
	}
	b.arbitrary("border", lengthOr("border-width", "border-color"))
	for _, r := range [][2]string{{"", "0.25rem"}, {"-none", "0"}, {"-sm", "0.125rem"}, {"-md", "0.375rem"}, {"-lg", "0.5rem"}, {"-xl", "0.75rem"}, {"-2xl", "1rem"}, {"-3xl", "1.5rem"}, {"-full", "9999px"}} {
		b.prop("rounded"+r[0], r[1], "border-radius")
	}
	b.prefix("rounded", "border-radius")

	// Effects
	b.static("outline-none", decl("outline", "2px solid transparent"), decl("outline-offset", "2px"))
	for _, r := range [][2]string{{"", "3px"}, {"-0", "0px"}, {"-1", "1px"}, {"-2", "2px"}, {"-4", "4px"}, {"-8", "8px"}} {
		b.prop("ring"+r[0], "0 0 0 "+r[1]+" var("+ringColorVar+", rgb(147 197 253 / 0.5))", "box-shadow")
	}
	for _, bl := range [][2]string{{"-none", "0"}, {"-sm", "4px"}, {"", "8px"}, {"-md", "12px"}, {"-lg", "16px"}, {"-xl", "24px"}} {
		b.prop("backdrop-blur"+bl[0], "blur("+bl[1]+")", "backdrop-filter")
	}
	for _, o := range []int{0, 5, 10, 20, 25, 30, 40, 50, 60, 70, 75, 80, 90, 95, 100} {
		b.prop("opacity-"+strconv.Itoa(o), strconv.FormatFloat(float64(o)/100, 'f', -1, 64), "opacity")
	}
	b.prefix("opacity", "opacity")
	b.prop("shadow-sm", "0 1px 2px 0 rgb(0 0 0 / 0.05)", "box-shadow")
	b.prop("shadow", "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)", "box-shadow")
	b.prop("shadow-md", "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)", "box-shadow")
	b.prop("shadow-lg", "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)", "box-shadow")
	b.prop("shadow-none", "0 0 #0000", "box-shadow")

	// Interactivity
	b.prop("cursor-pointer", "pointer", "cursor")
	b.prop("cursor-not-allowed", "not-allowed", "cursor")
	b.prop("select-none", "none", "user-select")
	b.prop("pointer-events-none", "none", "pointer-events")
	b.static("transition-colors",
		decl("transition-property", "color, background-color, border-color"),
		decl("transition-timing-function", "cubic-bezier(0.4, 0, 0.2, 1)"),
		decl("transition-duration", "150ms"))
	for _, d := range []string{"75", "100", "150", "200", "300", "500"} {
		b.prop("duration-"+d, d+"ms", "transition-duration")
	}

	// Icons
	for name, svg := range tablerIcons {
		b.static("i-tabler-"+name, iconDeclarations(svg)...)
	}

	return &Table{entries: b.entries}
}

// lengthOr picks the length property when the arbitrary value looks numeric,
// otherwise the color property ("text-[22px]" vs "text-[#1da1f2]")
func lengthOr(lengthProp, colorProp string) func(string) []Declaration {
	return func(v string) []Declaration {
		if v != "" && (v[0] >= '0' && v[0] <= '9' || v[0] == '.') {
			return []Declaration{decl(lengthProp, v)}
		}
		return []Declaration{decl(colorProp, v)}
	}
}
