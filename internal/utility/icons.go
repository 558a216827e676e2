package utility

import (
	"net/url"
	"strings"
)

// tablerIcons holds the stroke paths of the bundled Tabler icons
var tablerIcons = map[string]string{
	"plus":  `<path d="M12 5v14"/><path d="M5 12h14"/>`,
	"x":     `<path d="M18 6L6 18"/><path d="M6 6l12 12"/>`,
	"trash": `<path d="M4 7h16"/><path d="M10 11v6"/><path d="M14 11v6"/><path d="M5 7l1 12a2 2 0 0 0 2 2h8a2 2 0 0 0 2 -2l1 -12"/><path d="M9 7v-3a1 1 0 0 1 1 -1h4a1 1 0 0 1 1 1v3"/>`,
	"check": `<path d="M5 12l5 5l10 -10"/>`,
	"edit":  `<path d="M7 7h-1a2 2 0 0 0 -2 2v9a2 2 0 0 0 2 2h9a2 2 0 0 0 2 -2v-1"/><path d="M20.385 6.585a2.1 2.1 0 0 0 -2.97 -2.97l-8.415 8.385v3h3l8.385 -8.415z"/>`,
}

const iconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">%s</svg>`

// iconDeclarations renders an icon as a currentColor-tinted mask
func iconDeclarations(paths string) []Declaration {
	svg := strings.Replace(iconSVG, "%s", paths, 1)
	uri := `url("data:image/svg+xml;utf8,` + url.PathEscape(svg) + `")`
	return []Declaration{
		decl("--fn-icon", uri),
		decl("-webkit-mask", "var(--fn-icon) no-repeat"),
		decl("mask", "var(--fn-icon) no-repeat"),
		decl("-webkit-mask-size", "100% 100%"),
		decl("mask-size", "100% 100%"),
		decl("background-color", "currentColor"),
		decl("color", "inherit"),
		decl("display", "inline-block"),
		decl("vertical-align", "middle"),
	}
}
