package catalog

import (
	"github.com/funicular/funicular/internal/markup"
	"github.com/funicular/funicular/internal/page"
)

const (
	emptyListing  = "No games..."
	missingDetail = "No game..."
)

// ListingView renders the games heading, the action form and the table.
// An empty or unreadable catalog renders the empty-state message instead
// of the table.
func ListingView(games []Game) markup.Part {
	return markup.Group(
		markup.El("h1", markup.Class(page.Heading), markup.Text("Games")),
		markup.El("form",
			markup.Attr("method", "post"),
			markup.Attr("action", "/games"),
			markup.Class("flex flex-col gap-4 justify-center items-center"),
			markup.El("div", markup.Class("flex flex-row gap-2"),
				markup.El("a",
					markup.Attr("href", "/games?add"),
					markup.Attr("title", "Add game"),
					markup.Class(page.ButtonPrimary),
					markup.El("span", markup.Class("w-4 h-4 i-tabler-plus")),
				),
				markup.El("button",
					markup.Attr("type", "submit"),
					markup.Attr("name", "submit"),
					markup.Attr("value", SubmitRemove),
					markup.Class(page.ButtonError),
					markup.Text("Remove"),
				),
			),
			tableOrEmpty(games),
		),
	)
}

func tableOrEmpty(games []Game) markup.Part {
	if len(games) == 0 {
		return markup.El("p", markup.Text(emptyListing))
	}
	return markup.El("table",
		markup.El("thead",
			markup.El("tr",
				markup.El("th", markup.Class(page.TableCell),
					markup.El("input",
						markup.Attr("type", "checkbox"),
						markup.Attr("name", "slugs_all"),
						markup.Attr("value", "true"),
						markup.Attr("title", "Select all"),
						markup.Class(page.Checkbox),
					),
				),
				markup.El("th", markup.Class(page.TableCell), markup.Text("Name")),
			),
		),
		markup.El("tbody",
			markup.Each(games, func(g Game) markup.Part {
				return markup.El("tr",
					markup.El("td", markup.Class(page.TableCell),
						markup.El("input",
							markup.Attr("type", "checkbox"),
							markup.Attr("name", "slugs"),
							markup.Attr("value", g.Slug),
							markup.Class(page.Checkbox),
						),
					),
					markup.El("td", markup.Class(page.TableCell),
						markup.El("a",
							markup.Attr("href", "/games/"+g.Slug),
							markup.Class(page.Link),
							markup.Text(g.Name),
						),
					),
				)
			}),
		),
	)
}

// AddDialog is the overlay shown while an add is pending
func AddDialog() markup.Part {
	return markup.Group(
		markup.El("dialog", markup.Bool("open"), markup.Class(page.Dialog),
			markup.El("h2", markup.Class("text-xl"), markup.Text("Add Game")),
			markup.El("form",
				markup.Attr("method", "post"),
				markup.Attr("action", "/games"),
				markup.Class("flex flex-col gap-4 justify-center"),
				markup.El("input",
					markup.Attr("type", "text"),
					markup.Attr("name", "name"),
					markup.Attr("placeholder", "Name"),
					markup.Bool("required"),
					markup.Bool("autofocus"),
					markup.Class(page.Input),
				),
				markup.El("textarea",
					markup.Attr("name", "description"),
					markup.Attr("placeholder", "Description"),
					markup.Class(page.Input),
				),
				markup.El("div", markup.Class("flex justify-between"),
					markup.El("button",
						markup.Attr("type", "submit"),
						markup.Attr("name", "submit"),
						markup.Attr("value", SubmitAdd),
						markup.Class(page.ButtonSuccess),
						markup.Text("Submit"),
					),
					markup.El("a", markup.Attr("href", "/games"), markup.Class(page.ButtonPrimary), markup.Text("Close")),
				),
			),
		),
		markup.El("a", markup.Attr("href", "/games"), markup.Class(page.Backdrop)),
	)
}

// DetailView renders one game with its Markdown description
func DetailView(g *Game, description []markup.Node) markup.Part {
	return markup.Group(
		markup.El("h1", markup.Class(page.Heading), markup.Text(g.Name)),
		markup.If(len(description) > 0,
			markup.El("article", markup.Class("flex flex-col gap-2 max-w-prose"), markup.Children(description...)),
		),
		markup.El("a", markup.Attr("href", "/games"), markup.Class(page.ButtonPrimary), markup.Text("Back")),
	)
}

// MissingView is shown for an unknown slug
func MissingView() markup.Part {
	return markup.Group(
		markup.El("h1", markup.Class(page.Heading), markup.Text("Games")),
		markup.El("p", markup.Text(missingDetail)),
	)
}

// Documents returns one instance of every catalog document shape, so a
// precomputed stylesheet covers all classes the catalog can emit
func Documents() []page.Fragments {
	sample := []Game{{Slug: "sample", Name: "Sample"}}
	return []page.Fragments{
		{Content: ListingView(sample)},
		{Content: ListingView(nil), Overlay: AddDialog()},
		{Content: DetailView(&sample[0], []markup.Node{markup.El("p", markup.Text("Sample"))})},
		{Content: MissingView()},
	}
}
