package markup

import (
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	el := El("a",
		Attr("href", "/games"),
		Class("hover:text-violet-500", " px-4  py-2 "),
		If(false, Bool("hidden")),
		Text("Games"),
	)

	require.Equal(t, "a", el.Tag)
	require.Equal(t, []string{"hover:text-violet-500", "px-4", "py-2"}, el.Classes)
	href, ok := el.Attr("href")
	require.True(t, ok)
	require.Equal(t, "/games", href)
	require.Equal(t, []Node{Text("Games")}, el.Children)
}

func TestRenderEscapes(t *testing.T) {
	el := El("p",
		Attr("title", `"quoted" & co`),
		Class("p-2"),
		Text("<script>alert(1)</script>"),
	)

	got := String(el)
	require.Equal(t, `<p class="p-2" title="&#34;quoted&#34; &amp; co">&lt;script&gt;alert(1)&lt;/script&gt;</p>`, got)
}

func TestRenderDocument(t *testing.T) {
	root := El("html", Attr("lang", "en"),
		El("head", El("meta", Attr("charset", "utf-8"))),
		El("body",
			El("input", Attr("type", "text"), Bool("required")),
		),
	)

	var b strings.Builder
	require.NoError(t, RenderDocument(&b, root))
	require.Equal(t,
		`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/></head><body><input type="text" required=""/></body></html>`,
		b.String())
}

func TestRenderStyleIsRawText(t *testing.T) {
	el := El("style", Text(`.sm\:flex-row > a { color: red }`))
	require.Equal(t, `<style>.sm\:flex-row > a { color: red }</style>`, String(el))
}

func TestEachClassPreOrder(t *testing.T) {
	tree := El("main", Class("container flex"),
		El("h1", Class("text-xl"), Text("Games")),
		El("div", Class("flex gap-2"),
			El("a", Class("px-4")),
		),
		El("p", Class("p-2")),
	)

	var got []string
	tree.EachClass(func(c string) { got = append(got, c) })
	require.Equal(t, []string{"container", "flex", "text-xl", "flex", "gap-2", "px-4", "p-2"}, got)
}

func TestFind(t *testing.T) {
	tree := El("html", El("head", El("title", Text("x"))), El("body"))
	require.Equal(t, "body", tree.Find("body").Tag)
	require.Nil(t, tree.Find("footer"))
}

func TestFromHTML(t *testing.T) {
	nodes, err := FromHTML(`<p class="a b">Hi <em>there</em></p><!-- gone -->`)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	p, ok := nodes[0].(*Element)
	require.True(t, ok)
	require.Equal(t, "p", p.Tag)
	require.Equal(t, []string{"a", "b"}, p.Classes)
	require.Len(t, p.Children, 2)
	require.Equal(t, Text("Hi "), p.Children[0])
}

func TestMarkdown(t *testing.T) {
	nodes, err := Markdown("A **bold** move.\n\n<script>x()</script>\n")
	require.NoError(t, err)

	var b strings.Builder
	for _, n := range nodes {
		require.NoError(t, Render(&b, n))
	}
	require.Contains(t, b.String(), "<strong>bold</strong>")
	require.NotContains(t, b.String(), "<script>")
}

func TestDump(t *testing.T) {
	tree := El("main", Class("container"),
		El("h1", Class("text-xl"), Text("Games")),
		El("hr"),
	)

	out := Dump(tree)
	require.Contains(t, out, "main.container")
	require.Contains(t, out, "h1.text-xl")
	require.Contains(t, out, `"Games"`)
	require.Contains(t, out, "hr")
}

func TestDumpTruncatesOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("é", dumpTextLimit+5)

	out := Dump(El("p", Text(long)))
	require.True(t, utf8.ValidString(out))
	require.Contains(t, out, strconv.Quote(strings.Repeat("é", dumpTextLimit)+"…"))
}
