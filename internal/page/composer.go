// Package page composes complete documents around page fragments and
// synthesizes the stylesheet each document needs.
package page

import (
	"fmt"
	"strings"

	"github.com/funicular/funicular/internal/markup"
	"github.com/funicular/funicular/internal/stylesheet"
	"github.com/funicular/funicular/internal/utility"
)

const favicon = "data:image/svg+xml;base64,PHN2ZyB4bWxucz0iaHR0cDovL3d3dy53My5vcmcvMjAwMC9zdmciIHdpZHRoPSIxZW0iIGhlaWdodD0iMWVtIiB2aWV3Qm94PSIwIDAgMjQgMjQiPjxwYXRoIGZpbGw9Im5vbmUiIHN0cm9rZT0iY3VycmVudENvbG9yIiBkPSJNNy40NzggMTguMTQ5YTEuNSAxLjUgMCAwIDEtMi45NTQuNTJtMTEuOTk5LTIuMjVhMS41IDEuNSAwIDAgMCAyLjk1NC0uNTJNOCAxMS43NThWNC42MzZtOCA1LjY0OFYzLjE4Mm02Ljk3IDYuMjNjLjAxOS0uNDc3LjAzLS45OC4wMy0xLjUwM0MyMyA0LjQxIDIyLjUgMiAyMi41IDJsLTIxIDMuODE4UzEgOC40MSAxIDExLjkxYzAgLjUyMy4wMTEgMS4wMjIuMDMgMS40OTJtMjEuOTQtMy45OUMyMi44NjIgMTIuMTI3IDIyLjUgMTQgMjIuNSAxNGwtMjEgMy44MThzLS4zNjItMS43NDMtLjQ3LTQuNDE3bTIxLjk0LTMuOTljLTEwLjY1Ni45NzMtMjEuMzAyIDMuODE4LTIxLjk0IDMuOTlNMjMgMTlMMSAyMyIvPjwvc3ZnPg=="

// NavLink is one navigation entry
type NavLink struct {
	Href  string
	Label string
}

// DefaultNav is the site navigation
var DefaultNav = []NavLink{
	{Href: "/", Label: "Home"},
	{Href: "/games", Label: "Games"},
}

// StyleMode selects how a document receives its stylesheet
type StyleMode string

const (
	// StyleInline embeds the synthesized CSS in a <style> element.
	StyleInline StyleMode = "inline"
	// StyleLinked links a precomputed stylesheet served separately.
	StyleLinked StyleMode = "linked"
)

// ParseStyleMode validates a configured style mode
func ParseStyleMode(s string) (StyleMode, error) {
	switch StyleMode(s) {
	case StyleInline, "":
		return StyleInline, nil
	case StyleLinked:
		return StyleLinked, nil
	}
	return "", fmt.Errorf("unknown style mode %q (want inline or linked)", s)
}

// Options configures a Composer
type Options struct {
	Title     string
	Nav       []NavLink
	Mode      StyleMode
	StylePath string // Stylesheet URL in linked mode
	IconPath  string // Favicon URL, an inline SVG by default
	Minify    bool
}

// Page is a composed document
type Page struct {
	HTML  string
	CSS   string
	Rules int
}

// Composer wraps fragments in the document shell
type Composer struct {
	synth *stylesheet.Synthesizer
	opts  Options
}

// NewComposer creates a composer. Unset options take the site defaults.
func NewComposer(synth *stylesheet.Synthesizer, opts Options) *Composer {
	if synth == nil {
		synth = stylesheet.NewSynthesizer(nil)
	}
	if opts.Title == "" {
		opts.Title = "Funicular"
	}
	if opts.Nav == nil {
		opts.Nav = DefaultNav
	}
	if opts.Mode == "" {
		opts.Mode = StyleInline
	}
	if opts.StylePath == "" {
		opts.StylePath = "/site.css"
	}
	if opts.IconPath == "" {
		opts.IconPath = favicon
	}
	return &Composer{synth: synth, opts: opts}
}

// StylePath returns the stylesheet URL used in linked mode
func (c *Composer) StylePath() string {
	return c.opts.StylePath
}

// Mode returns the configured style mode
func (c *Composer) Mode() StyleMode {
	return c.opts.Mode
}

// Synthesizer returns the synthesizer used for every document
func (c *Composer) Synthesizer() *stylesheet.Synthesizer {
	return c.synth
}

// Compose builds the document around content, synthesizes its stylesheet
// from the complete tree and serializes it. overlay may be nil; when present
// it is placed before the navigation so it covers the whole page.
func (c *Composer) Compose(content, overlay markup.Part) (*Page, error) {
	root := c.Document(content, overlay)

	sheet := c.synth.Synthesize(root)
	css := sheet.Render(stylesheet.Format{Minify: c.opts.Minify})

	if c.opts.Mode == StyleInline && css != "" {
		root.Find("head").Append(markup.El("style", markup.Text(css)))
	}

	var b strings.Builder
	if err := markup.RenderDocument(&b, root); err != nil {
		return nil, err
	}
	return &Page{HTML: b.String(), CSS: css, Rules: sheet.Len()}, nil
}

// Document assembles the full tree without synthesizing or serializing it
func (c *Composer) Document(content, overlay markup.Part) *markup.Element {
	head := markup.El("head",
		markup.El("meta", markup.Attr("charset", "utf-8")),
		markup.El("meta",
			markup.Attr("name", "viewport"),
			markup.Attr("content", "width=device-width, initial-scale=1"),
		),
		markup.El("title", markup.Text(c.opts.Title)),
		markup.El("link",
			markup.Attr("rel", "icon"),
			markup.Attr("type", "image/svg+xml"),
			markup.Attr("href", c.opts.IconPath),
		),
		markup.If(c.opts.Mode == StyleLinked, markup.El("link",
			markup.Attr("rel", "stylesheet"),
			markup.Attr("href", c.opts.StylePath),
		)),
	)

	return markup.El("html",
		markup.Attr("lang", "en"),
		markup.If(c.synth.Resolver().DarkMode() == utility.DarkClass, markup.Class(utility.DarkRootClass)),
		head,
		markup.El("body", markup.Class(body),
			overlay,
			c.navigation(),
			markup.El("main", markup.Class(mainArea), content),
		),
	)
}

func (c *Composer) navigation() *markup.Element {
	return markup.El("nav", markup.Class(nav),
		markup.El("ul", markup.Class(navList),
			markup.Each(c.opts.Nav, func(l NavLink) markup.Part {
				return markup.El("li",
					markup.El("a", markup.Attr("href", l.Href), markup.Class(Link), markup.Text(l.Label)),
				)
			}),
		),
	)
}

// Fragments is the content and optional overlay of one document
type Fragments struct {
	Content markup.Part
	Overlay markup.Part
}

// Precompute synthesizes a single stylesheet covering all given documents,
// in document order. It backs the linked style mode.
func (c *Composer) Precompute(docs ...Fragments) *stylesheet.Stylesheet {
	srcs := make([]stylesheet.ClassSource, 0, len(docs))
	for _, d := range docs {
		srcs = append(srcs, c.Document(d.Content, d.Overlay))
	}
	return c.synth.Synthesize(stylesheet.Concat(srcs...))
}

// Format returns the serialization format for synthesized stylesheets
func (c *Composer) Format() stylesheet.Format {
	return stylesheet.Format{Minify: c.opts.Minify}
}
