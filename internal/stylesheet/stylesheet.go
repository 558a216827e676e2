// Package stylesheet synthesizes and serializes the minimal stylesheet for a
// rendered document.
package stylesheet

import (
	"io"
	"slices"
	"strings"

	"github.com/funicular/funicular/internal/utility"
)

// Stylesheet is an ordered set of rules unique by (selector, media query).
// The first rule added for a key wins.
type Stylesheet struct {
	rules []utility.StyleRule
	seen  map[utility.RuleKey]struct{}
}

// New creates an empty stylesheet
func New() *Stylesheet {
	return &Stylesheet{seen: make(map[utility.RuleKey]struct{})}
}

// Add appends rule unless its key is already present
func (s *Stylesheet) Add(rule utility.StyleRule) bool {
	key := rule.Key()
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	s.rules = append(s.rules, rule)
	return true
}

// Has reports whether a rule with key exists
func (s *Stylesheet) Has(key utility.RuleKey) bool {
	_, ok := s.seen[key]
	return ok
}

// Rules returns a copy of the rules in insertion order
func (s *Stylesheet) Rules() []utility.StyleRule {
	return slices.Clone(s.rules)
}

// Len returns the number of rules
func (s *Stylesheet) Len() int {
	return len(s.rules)
}

// Format controls serialization
type Format struct {
	Minify bool
}

// String serializes with the default (pretty) format
func (s *Stylesheet) String() string {
	return s.Render(Format{})
}

// Render serializes the stylesheet to CSS text
func (s *Stylesheet) Render(f Format) string {
	var b strings.Builder
	_, _ = s.Write(&b, f)
	return b.String()
}

// Write writes the CSS text to w
func (s *Stylesheet) Write(w io.Writer, f Format) (int64, error) {
	cw := &countWriter{w: w}
	for i, rule := range s.rules {
		if f.Minify {
			writeMinified(cw, rule)
		} else {
			if i > 0 {
				cw.str("\n")
			}
			writePretty(cw, rule)
		}
		if cw.err != nil {
			return cw.n, cw.err
		}
	}
	return cw.n, cw.err
}

func writePretty(w *countWriter, rule utility.StyleRule) {
	indent := ""
	if rule.MediaQuery != "" {
		w.str("@media " + rule.MediaQuery + " {\n")
		indent = "  "
	}
	w.str(indent + rule.Selector + " {\n")
	for _, d := range rule.Declarations {
		w.str(indent + "  " + d.Property + ": " + d.Value + ";\n")
	}
	w.str(indent + "}\n")
	if rule.MediaQuery != "" {
		w.str("}\n")
	}
}

func writeMinified(w *countWriter, rule utility.StyleRule) {
	if rule.MediaQuery != "" {
		w.str("@media " + rule.MediaQuery + "{")
	}
	w.str(rule.Selector + "{")
	for i, d := range rule.Declarations {
		if i > 0 {
			w.str(";")
		}
		w.str(d.Property + ":" + d.Value)
	}
	w.str("}")
	if rule.MediaQuery != "" {
		w.str("}")
	}
}

// countWriter remembers the first error so serialization stays linear
type countWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countWriter) str(s string) {
	if c.err != nil {
		return
	}
	n, err := io.WriteString(c.w, s)
	c.n += int64(n)
	c.err = err
}
