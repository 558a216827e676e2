package page

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funicular/funicular/internal/markup"
	"github.com/funicular/funicular/internal/stylesheet"
	"github.com/funicular/funicular/internal/utility"
)

func TestComposeInline(t *testing.T) {
	c := NewComposer(nil, Options{})

	p, err := c.Compose(Home(), nil)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(p.HTML, "<!DOCTYPE html><html lang=\"en\">"))
	require.Contains(t, p.HTML, "<title>Funicular</title>")
	require.Contains(t, p.HTML, "<style>"+p.CSS+"</style>")
	require.NotContains(t, p.HTML, `rel="stylesheet"`)

	// Shell, navigation and content classes are all synthesized
	require.Contains(t, p.CSS, `.dark\:bg-slate-900`)
	require.Contains(t, p.CSS, `.sm\:flex-row`)
	require.Contains(t, p.CSS, `.hover\:text-violet-500:hover`)
	require.Contains(t, p.CSS, ".text-lg")
	require.Positive(t, p.Rules)
}

func TestComposeDeterministic(t *testing.T) {
	c := NewComposer(nil, Options{})

	a, err := c.Compose(Home(), nil)
	require.NoError(t, err)
	b, err := c.Compose(Home(), nil)
	require.NoError(t, err)
	require.Equal(t, a.HTML, b.HTML)
	require.Equal(t, a.CSS, b.CSS)
}

func TestComposeOverlayBeforeNav(t *testing.T) {
	c := NewComposer(nil, Options{})
	overlay := markup.El("dialog", markup.Bool("open"), markup.Class(Dialog), markup.Text("hi"))

	p, err := c.Compose(Home(), overlay)
	require.NoError(t, err)

	dialog := strings.Index(p.HTML, "<dialog")
	nav := strings.Index(p.HTML, "<nav")
	require.NotEqual(t, -1, dialog)
	require.Less(t, dialog, nav)
	require.Contains(t, p.CSS, `.open\:flex[open]`)
}

func TestComposeLinked(t *testing.T) {
	c := NewComposer(nil, Options{Mode: StyleLinked, StylePath: "/assets/site.css"})

	p, err := c.Compose(Home(), nil)
	require.NoError(t, err)
	require.Contains(t, p.HTML, `<link rel="stylesheet" href="/assets/site.css"/>`)
	require.NotContains(t, p.HTML, "<style>")
	require.NotEmpty(t, p.CSS)
}

func TestComposeDarkClass(t *testing.T) {
	synth := stylesheet.NewSynthesizer(utility.NewResolver(nil, utility.DarkClass))
	c := NewComposer(synth, Options{})

	p, err := c.Compose(Home(), nil)
	require.NoError(t, err)
	require.Contains(t, p.HTML, `<html class="dark" lang="en">`)
	require.Contains(t, p.CSS, `.dark .dark\:bg-slate-900`)
	require.NotContains(t, p.CSS, "prefers-color-scheme")
}

func TestComposeEscapesContent(t *testing.T) {
	c := NewComposer(nil, Options{})

	p, err := c.Compose(markup.El("p", markup.Text("<b>x</b>")), nil)
	require.NoError(t, err)
	require.Contains(t, p.HTML, "&lt;b&gt;x&lt;/b&gt;")
}

func TestPrecompute(t *testing.T) {
	c := NewComposer(nil, Options{Mode: StyleLinked})

	home := c.Precompute(Fragments{Content: Home()})
	both := c.Precompute(
		Fragments{Content: Home()},
		Fragments{Content: markup.El("div", markup.Class("grid-cols-2"))},
	)
	require.Equal(t, home.Len()+1, both.Len())
}

func TestParseStyleMode(t *testing.T) {
	m, err := ParseStyleMode("")
	require.NoError(t, err)
	require.Equal(t, StyleInline, m)

	_, err = ParseStyleMode("external")
	require.Error(t, err)
}
