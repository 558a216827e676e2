package utility

import "fmt"

// Breakpoints are the mobile-first min-width thresholds in pixels.
var Breakpoints = map[string]int{
	"sm":  640,
	"md":  768,
	"lg":  1024,
	"xl":  1280,
	"2xl": 1536,
}

// pseudoSelectors maps state variants to the selector suffix they append
var pseudoSelectors = map[string]string{
	"hover":   ":hover",
	"focus":   ":focus",
	"invalid": ":invalid",
	"open":    "[open]",
	"target":  ":target",
	"last":    ":last-child",
}

// lookupVariant matches a prefix case-sensitively against the closed variant set
func lookupVariant(name string) (Variant, bool) {
	if _, ok := Breakpoints[name]; ok {
		return Variant{Name: name, Kind: KindBreakpoint}, true
	}
	if name == "dark" {
		return Variant{Name: name, Kind: KindColorScheme}, true
	}
	if _, ok := pseudoSelectors[name]; ok {
		return Variant{Name: name, Kind: KindPseudoState}, true
	}
	return Variant{}, false
}

// DarkMode selects how the dark variant is activated
type DarkMode string

const (
	// DarkMedia follows the user agent color scheme via a media query.
	DarkMedia DarkMode = "media"
	// DarkClass requires a "dark" class on an ancestor (the document root).
	DarkClass DarkMode = "class"
)

// ParseDarkMode validates a configured dark mode strategy
func ParseDarkMode(s string) (DarkMode, error) {
	switch DarkMode(s) {
	case DarkMedia, "":
		return DarkMedia, nil
	case DarkClass:
		return DarkClass, nil
	}
	return "", fmt.Errorf("unknown dark mode %q (want media or class)", s)
}

const (
	darkMediaQuery = "(prefers-color-scheme: dark)"
	// DarkRootClass is the class the document root carries in class mode.
	DarkRootClass = "dark"
)
