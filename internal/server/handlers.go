package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/funicular/funicular/internal/catalog"
	"github.com/funicular/funicular/internal/page"
)

func (s *Server) index(c *fiber.Ctx) error {
	return s.render(c, fiber.StatusOK, page.Fragments{Content: page.Home()})
}

func (s *Server) stylesheet(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, stylesheetMaxAge)
	c.Set(fiber.HeaderContentType, "text/css")
	return c.SendString(s.siteCSS)
}

func (s *Server) listGames(c *fiber.Ctx) error {
	addOpen := c.Context().QueryArgs().Has("add")
	view, err := s.catalog.Listing(c.UserContext(), addOpen)
	if err != nil {
		return err
	}
	return s.render(c, view.Status, view.Fragments())
}

func (s *Server) submitGames(c *fiber.Ctx) error {
	view, err := s.catalog.Submit(c.UserContext(), decodeForm(c))
	if err != nil {
		return err
	}
	return s.render(c, view.Status, view.Fragments())
}

func (s *Server) showGame(c *fiber.Ctx) error {
	view, err := s.catalog.Detail(c.UserContext(), c.Params("slug"))
	if err != nil {
		return err
	}
	return s.render(c, view.Status, view.Fragments())
}

func (s *Server) render(c *fiber.Ctx, status int, f page.Fragments) error {
	p, err := s.composer.Compose(f.Content, f.Overlay)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).SendString(p.HTML)
}

// decodeForm reads a multipart or urlencoded submission. Slugs arrive as
// repeated "slugs" or "slugs[]" fields.
func decodeForm(c *fiber.Ctx) catalog.Form {
	form := catalog.Form{
		Submit:      c.FormValue("submit"),
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		All:         truthy(c.FormValue("slugs_all")),
	}

	if mf, err := c.MultipartForm(); err == nil {
		form.Slugs = append(form.Slugs, mf.Value["slugs"]...)
		form.Slugs = append(form.Slugs, mf.Value["slugs[]"]...)
		return form
	}

	args := c.Request().PostArgs()
	for _, key := range []string{"slugs", "slugs[]"} {
		for _, v := range args.PeekMulti(key) {
			form.Slugs = append(form.Slugs, string(v))
		}
	}
	return form
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "off", "no":
		return false
	}
	return true
}
