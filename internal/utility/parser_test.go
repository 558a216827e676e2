package utility

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Token
	}{
		{
			name: "plain utility",
			raw:  "flex",
			want: Token{Raw: "flex", Utility: "flex"},
		},
		{
			name: "breakpoint variant",
			raw:  "sm:flex-row",
			want: Token{
				Raw:      "sm:flex-row",
				Variants: []Variant{{Name: "sm", Kind: KindBreakpoint}},
				Utility:  "flex-row",
			},
		},
		{
			name: "stacked variants keep source order",
			raw:  "dark:hover:text-violet-300",
			want: Token{
				Raw: "dark:hover:text-violet-300",
				Variants: []Variant{
					{Name: "dark", Kind: KindColorScheme},
					{Name: "hover", Kind: KindPseudoState},
				},
				Utility: "text-violet-300",
			},
		},
		{
			name: "arbitrary value",
			raw:  "w-[33%]",
			want: Token{Raw: "w-[33%]", Utility: "w", Value: "33%", Arbitrary: true},
		},
		{
			name: "separator inside brackets",
			raw:  "md:bg-[url(a:b)]",
			want: Token{
				Raw:       "md:bg-[url(a:b)]",
				Variants:  []Variant{{Name: "md", Kind: KindBreakpoint}},
				Utility:   "bg",
				Value:     "url(a:b)",
				Arbitrary: true,
			},
		},
		{
			name: "unknown variant falls back to opaque",
			raw:  "group-hover:underline",
			want: Token{Raw: "group-hover:underline", Utility: "group-hover:underline"},
		},
		{
			name: "variants are case sensitive",
			raw:  "Hover:underline",
			want: Token{Raw: "Hover:underline", Utility: "Hover:underline"},
		},
		{
			name: "trailing separator",
			raw:  "hover:",
			want: Token{Raw: "hover:", Utility: "hover:"},
		},
		{
			name: "empty brackets are not arbitrary",
			raw:  "w-[]",
			want: Token{Raw: "w-[]", Utility: "w-[]"},
		},
		{
			name: "scripting hook",
			raw:  "js-toggle",
			want: Token{Raw: "js-toggle", Utility: "js-toggle"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.raw)
			require.True(t, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	_, ok := Parse("")
	require.False(t, ok)
}

func TestParseClassList(t *testing.T) {
	tokens := ParseClassList("  flex\tsm:flex-row\n gap-4 ")
	require.Len(t, tokens, 3)
	require.Equal(t, "flex", tokens[0].Raw)
	require.Equal(t, "sm:flex-row", tokens[1].Raw)
	require.Equal(t, "gap-4", tokens[2].Raw)
}
