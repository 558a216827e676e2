package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/funicular/funicular/internal/catalog"
	"github.com/funicular/funicular/internal/markup"
	"github.com/funicular/funicular/internal/page"
)

var pageNames = []string{"index", "games", "add", "empty", "detail", "missing"}

var renderCmd = &cobra.Command{
	Use:   "render <index|games|add|empty|detail|missing>",
	Short: "Print a page rendered with sample data",
	Long: `Compose a page with sample catalog data and print its markup tree, its HTML
or the stylesheet synthesized for it. No database is needed.`,
	ValidArgs: pageNames,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runRender,
}

func init() {
	f := renderCmd.Flags()
	f.String("format", "tree", "Output: tree|html|css")
	f.Bool("minify", false, "Minify synthesized CSS")
}

var sampleGames = []catalog.Game{
	{Slug: "celeste", Name: "Celeste", Description: "A climbing game about *anxiety* and a mountain."},
	{Slug: "hades", Name: "Hades", Description: "Escape the **underworld**."},
	{Slug: "outer-wilds", Name: "Outer Wilds"},
}

// samplePage returns the content and overlay fragments for a page name
func samplePage(name string) (content, overlay markup.Part, err error) {
	switch name {
	case "index":
		return page.Home(), nil, nil
	case "games":
		return catalog.ListingView(sampleGames), nil, nil
	case "add":
		return catalog.ListingView(sampleGames), catalog.AddDialog(), nil
	case "empty":
		return catalog.ListingView(nil), nil, nil
	case "detail":
		g := sampleGames[0]
		nodes, err := markup.Markdown(g.Description)
		if err != nil {
			return nil, nil, err
		}
		return catalog.DetailView(&g, nodes), nil, nil
	case "missing":
		return catalog.MissingView(), nil, nil
	}
	return nil, nil, fmt.Errorf("unknown page %q", name)
}

func runRender(cmd *cobra.Command, args []string) error {
	content, overlay, err := samplePage(args[0])
	if err != nil {
		return err
	}

	composer, err := newComposer(
		getStringWithFallback("dark", "style.dark", "media"),
		string(page.StyleInline),
		"",
		getBoolWithFallback("minify", "style.minify", false),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format := getStringWithFallback("format", "render.format", "tree"); format {
	case "tree":
		fmt.Fprint(out, markup.Dump(composer.Document(content, overlay)))
	case "html", "css":
		p, err := composer.Compose(content, overlay)
		if err != nil {
			return err
		}
		if format == "html" {
			fmt.Fprintln(out, p.HTML)
		} else {
			fmt.Fprintln(out, p.CSS)
		}
	default:
		return fmt.Errorf("unknown format %q (want tree, html or css)", format)
	}
	return nil
}
