package stylesheet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funicular/funicular/internal/utility"
)

func TestParseString(t *testing.T) {
	content := `
/* generated */
.flex { display: flex; }

@media (min-width: 640px) {
  .sm\:flex-row:hover, .b { flex-direction: row; }
}

.bg-black\/50 { background-color: rgb(0 0 0 / 0.5) }
`
	rules, err := ParseString(content)
	require.NoError(t, err)
	require.Len(t, rules, 3)

	require.Equal(t, ".flex", rules[0].Selector)
	require.Equal(t, []string{"flex"}, rules[0].Classes)
	require.Empty(t, rules[0].MediaQuery)
	require.Equal(t, []utility.Declaration{{Property: "display", Value: "flex"}}, rules[0].Declarations)

	require.Equal(t, []string{"sm:flex-row", "b"}, rules[1].Classes)
	require.Equal(t, "(min-width: 640px)", rules[1].MediaQuery)

	require.Equal(t, []string{"bg-black/50"}, rules[2].Classes)
	require.Empty(t, rules[2].MediaQuery)
	require.Equal(t, "rgb(0 0 0 / 0.5)", rules[2].Declarations[0].Value)
}

func TestParseRoundTrip(t *testing.T) {
	s := NewSynthesizer(nil)
	classes := ClassList{"p-4", "focus:ring-violet-400", "sm:dark:bg-slate-900", "i-tabler-plus"}
	sheet := s.Synthesize(classes)

	for _, f := range []Format{{}, {Minify: true}} {
		rules, err := ParseString(sheet.Render(f))
		require.NoError(t, err)
		require.Len(t, rules, sheet.Len())
		for i, r := range rules {
			want := sheet.Rules()[i]
			require.Equal(t, []string{string(classes[i])}, r.Classes)
			require.Equal(t, want.MediaQuery, r.MediaQuery)
			require.Len(t, r.Declarations, len(want.Declarations))
		}
	}
}
