package utility

import (
	"strconv"
	"strings"
)

// EscapeClass escapes a class name for use in a CSS class selector.
//
//	"sm:flex-row" → "sm\:flex-row"
//	"w-[33%]"     → "w-\[33\%\]"
//	"2xl:p-4"     → "\32 xl\:p-4"
func EscapeClass(class string) string {
	var b strings.Builder
	b.Grow(len(class) + 8)
	for i, r := range class {
		switch {
		case i == 0 && r >= '0' && r <= '9':
			b.WriteByte('\\')
			b.WriteString(strconv.FormatInt(int64(r), 16))
			b.WriteByte(' ')
		case i == 0 && r == '-' && len(class) == 1:
			b.WriteString(`\-`)
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r >= 0x80:
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}

// UnescapeClass reverses EscapeClass for selectors read back from a stylesheet
func UnescapeClass(ident string) string {
	if !strings.ContainsRune(ident, '\\') {
		return ident
	}
	var b strings.Builder
	for i := 0; i < len(ident); i++ {
		c := ident[i]
		if c != '\\' || i+1 >= len(ident) {
			b.WriteByte(c)
			continue
		}
		// Hex escape: up to six hex digits, optionally followed by one space
		j := i + 1
		for j < len(ident) && j-i <= 6 && isHex(ident[j]) {
			j++
		}
		if j > i+1 {
			n, err := strconv.ParseUint(ident[i+1:j], 16, 32)
			if err == nil {
				b.WriteRune(rune(n))
			}
			if j < len(ident) && ident[j] == ' ' {
				j++
			}
			i = j - 1
			continue
		}
		b.WriteByte(ident[i+1])
		i++
	}
	return b.String()
}

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
