package utility

import "strings"

// VariantSeparator splits variant prefixes from the utility name
const VariantSeparator = ':'

// Parse splits a class name into variants, utility name and arbitrary value.
//
//	"dark:hover:text-violet-300" → Variants{dark, hover}, Utility "text-violet-300"
//	"sm:w-[33%]"                 → Variants{sm}, Utility "w", Value "33%"
//	"js-toggle"                  → Utility "js-toggle"
//
// Unrecognized prefixes make the whole class an opaque utility with no
// variants. Only the empty string fails to parse.
func Parse(raw string) (Token, bool) {
	if raw == "" {
		return Token{}, false
	}

	segments := splitVariants(raw)
	last := segments[len(segments)-1]
	if last == "" {
		return opaque(raw), true
	}

	tok := Token{Raw: raw}
	for _, seg := range segments[:len(segments)-1] {
		v, ok := lookupVariant(seg)
		if !ok {
			return opaque(raw), true
		}
		tok.Variants = append(tok.Variants, v)
	}

	tok.Utility = last
	if name, value, ok := extractArbitrary(last); ok {
		tok.Utility = name
		tok.Value = value
		tok.Arbitrary = true
	}

	return tok, true
}

// ParseClassList parses a whitespace-separated class attribute value
func ParseClassList(classes string) []Token {
	fields := strings.Fields(classes)
	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		if tok, ok := Parse(f); ok {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func opaque(raw string) Token {
	return Token{Raw: raw, Utility: raw}
}

// splitVariants splits on the separator, ignoring separators inside brackets
// so arbitrary values like "bg-[url(a:b)]" stay intact
func splitVariants(raw string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case VariantSeparator:
			if depth == 0 {
				parts = append(parts, raw[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, raw[start:])
}

// extractArbitrary parses "prefix-[value]" syntax
// "w-[33%]" → ("w", "33%")
// "bg-[#1da1f2]" → ("bg", "#1da1f2")
func extractArbitrary(segment string) (name, value string, ok bool) {
	if !strings.HasSuffix(segment, "]") {
		return "", "", false
	}
	idx := strings.Index(segment, "-[")
	if idx <= 0 {
		return "", "", false
	}
	value = segment[idx+2 : len(segment)-1]
	if value == "" {
		return "", "", false
	}
	return segment[:idx], value, true
}
