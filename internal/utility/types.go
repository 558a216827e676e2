// Package utility parses utility class tokens and resolves them to CSS rules.
package utility

// VariantKind groups variant prefixes by how they change a rule
type VariantKind int

const (
	// KindBreakpoint wraps the rule in a min-width media query.
	KindBreakpoint VariantKind = iota
	// KindColorScheme scopes the rule to dark mode.
	KindColorScheme
	// KindPseudoState appends a pseudo-class or attribute selector.
	KindPseudoState
)

// Variant is one prefix of a utility token ("sm", "dark", "hover")
type Variant struct {
	Name string
	Kind VariantKind
}

// Token is a parsed utility class reference
type Token struct {
	Raw       string    // "dark:hover:text-violet-300" (selector source)
	Variants  []Variant // In source order
	Utility   string    // "text-violet-300", or "w" for "w-[33%]"
	Value     string    // Arbitrary value, only meaningful when Arbitrary is true
	Arbitrary bool      // True when the utility carried a bracketed value
}

// Declaration is a single CSS property/value pair
type Declaration struct {
	Property string
	Value    string
}

// StyleRule is a resolved CSS fact for one class token
type StyleRule struct {
	Selector     string        // ".sm\:flex-row"
	MediaQuery   string        // "(min-width: 640px)", empty when unconditional
	Declarations []Declaration // In table order
}

// Key identifies a rule for deduplication
func (r StyleRule) Key() RuleKey {
	return RuleKey{Selector: r.Selector, MediaQuery: r.MediaQuery}
}

// RuleKey is the (selector, media query) pair used to deduplicate rules
type RuleKey struct {
	Selector   string
	MediaQuery string
}
