package stylesheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/funicular/funicular/internal/utility"
)

// ParsedRule is a rule read back from CSS text
type ParsedRule struct {
	Selector     string   // Selector text as written
	Classes      []string // Unescaped class names referenced by the selector
	MediaQuery   string
	Declarations []utility.Declaration
}

// parserState tracks the enclosing @media blocks while lexing
type parserState struct {
	lexer *css.Lexer
	media []string // One entry per open block; "" for non-media at-rules
	rules []ParsedRule
}

// ParseString parses CSS text into rules
func ParseString(content string) ([]ParsedRule, error) {
	return parseInput(parse.NewInputString(content))
}

// Parse reads and parses CSS from r
func Parse(r io.Reader) ([]ParsedRule, error) {
	return parseInput(parse.NewInput(r))
}

func parseInput(input *parse.Input) ([]ParsedRule, error) {
	s := &parserState{lexer: css.NewLexer(input)}

	var prelude []string
	for {
		tt, text := s.lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := s.lexer.Err(); err != nil && err != io.EOF {
				return nil, fmt.Errorf("lex stylesheet: %w", err)
			}
			return s.rules, nil
		case css.CommentToken:
			continue
		case css.AtKeywordToken:
			s.handleAtRule(string(text))
			prelude = nil
		case css.LeftBraceToken:
			s.handleRule(strings.TrimSpace(strings.Join(prelude, "")))
			prelude = nil
		case css.RightBraceToken:
			if len(s.media) > 0 {
				s.media = s.media[:len(s.media)-1]
			}
			prelude = nil
		case css.SemicolonToken:
			prelude = nil
		case css.WhitespaceToken:
			if len(prelude) > 0 {
				prelude = append(prelude, " ")
			}
		default:
			prelude = append(prelude, string(text))
		}
	}
}

// handleAtRule reads the prelude of an at-rule. Blocks of @media are entered
// so nested rules pick up the condition; other blocks are tracked with an
// empty condition.
func (s *parserState) handleAtRule(keyword string) {
	var parts []string
	for {
		tt, text := s.lexer.Next()
		switch tt {
		case css.ErrorToken, css.SemicolonToken:
			return
		case css.LeftBraceToken:
			query := ""
			if keyword == "@media" {
				query = normalizeSpace(strings.Join(parts, ""))
			}
			s.media = append(s.media, query)
			return
		case css.WhitespaceToken:
			parts = append(parts, " ")
		default:
			parts = append(parts, string(text))
		}
	}
}

// handleRule records a style rule and consumes its declaration block
func (s *parserState) handleRule(selector string) {
	rule := ParsedRule{
		Selector:     selector,
		Classes:      selectorClasses(selector),
		MediaQuery:   s.currentMedia(),
		Declarations: s.extractDeclarations(),
	}
	s.rules = append(s.rules, rule)
}

func (s *parserState) currentMedia() string {
	var conds []string
	for _, m := range s.media {
		if m != "" {
			conds = append(conds, m)
		}
	}
	return strings.Join(conds, " and ")
}

// extractDeclarations reads property: value pairs until }
func (s *parserState) extractDeclarations() []utility.Declaration {
	var decls []utility.Declaration
	var prop string
	var val []string
	sawColon := false

	flush := func() {
		if prop != "" && len(val) > 0 {
			decls = append(decls, utility.Declaration{
				Property: prop,
				Value:    strings.TrimSpace(strings.Join(val, "")),
			})
		}
		prop, val, sawColon = "", nil, false
	}

	for {
		tt, text := s.lexer.Next()
		switch {
		case tt == css.ErrorToken || tt == css.RightBraceToken:
			flush()
			return decls
		case tt == css.SemicolonToken:
			flush()
		case tt == css.CommentToken:
		case (tt == css.IdentToken || tt == css.CustomPropertyNameToken) && prop == "":
			prop = string(text)
		case tt == css.ColonToken && !sawColon:
			sawColon = true
		case tt == css.WhitespaceToken && len(val) == 0:
		case prop != "":
			val = append(val, string(text))
		}
	}
}

// selectorClasses extracts class names from a selector list,
// unescaping CSS escapes: ".sm\:flex-row:hover" → ["sm:flex-row"]
func selectorClasses(selector string) []string {
	lexer := css.NewLexer(parse.NewInputString(selector))
	var classes []string
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			return classes
		}
		if tt == css.DelimToken && len(text) > 0 && text[0] == '.' {
			tt2, name := lexer.Next()
			if tt2 == css.IdentToken {
				classes = append(classes, utility.UnescapeClass(string(name)))
			}
		}
	}
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
