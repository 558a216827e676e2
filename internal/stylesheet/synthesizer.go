package stylesheet

import (
	"github.com/funicular/funicular/internal/utility"
)

// ClassSource yields class strings in document order
type ClassSource interface {
	EachClass(fn func(class string))
}

// ClassList is a flat ClassSource, used when classes come from scanned files
type ClassList []string

// EachClass implements ClassSource
func (l ClassList) EachClass(fn func(class string)) {
	for _, c := range l {
		fn(c)
	}
}

// Concat chains sources in order
func Concat(srcs ...ClassSource) ClassSource {
	return concat(srcs)
}

type concat []ClassSource

func (c concat) EachClass(fn func(class string)) {
	for _, src := range c {
		src.EachClass(fn)
	}
}

// Synthesizer derives stylesheets from the classes a document uses
type Synthesizer struct {
	resolver *utility.Resolver
}

// NewSynthesizer creates a synthesizer. A nil resolver uses the default table
// with media-query dark mode.
func NewSynthesizer(resolver *utility.Resolver) *Synthesizer {
	if resolver == nil {
		resolver = utility.NewResolver(nil, utility.DarkMedia)
	}
	return &Synthesizer{resolver: resolver}
}

// Resolver returns the resolver in use
func (s *Synthesizer) Resolver() *utility.Resolver {
	return s.resolver
}

// Synthesize resolves every class of src in order, keeping the first rule per key.
// Classes that do not resolve are skipped.
func (s *Synthesizer) Synthesize(src ClassSource) *Stylesheet {
	sheet := New()
	// Raw classes already handled; a repeated class can only repeat its rule
	visited := make(map[string]struct{})

	src.EachClass(func(class string) {
		if _, ok := visited[class]; ok {
			return
		}
		visited[class] = struct{}{}

		tok, ok := utility.Parse(class)
		if !ok {
			return
		}
		rule, ok := s.resolver.Resolve(tok)
		if !ok {
			return
		}
		sheet.Add(rule)
	})

	return sheet
}

// Unresolved returns the distinct classes of src that produce no rule, in order
func (s *Synthesizer) Unresolved(src ClassSource) []string {
	var out []string
	seen := make(map[string]struct{})
	src.EachClass(func(class string) {
		if _, ok := seen[class]; ok {
			return
		}
		seen[class] = struct{}{}
		if !s.resolver.Known(class) {
			out = append(out, class)
		}
	})
	return out
}
