package page

import "github.com/funicular/funicular/internal/markup"

const lorem = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Aenean euismod bibendum laoreet. " +
	"Proin gravida dolor sit amet lacus accumsan et viverra justo commodo."

// Home is the landing page content
func Home() markup.Part {
	return markup.Group(
		markup.El("h1", markup.Class("text-lg"), markup.Text("Hello, World!")),
		markup.El("p", markup.Class("p-2 text-red"), markup.Text(lorem)),
	)
}
