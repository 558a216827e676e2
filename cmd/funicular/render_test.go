package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	resetKoanf()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	t.Cleanup(func() { rootCmd.SetOut(nil) })
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestRenderCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "games tree",
			args: []string{"render", "games", "--format", "tree"},
			want: []string{"table", `"Celeste"`},
		},
		{
			name: "add dialog html",
			args: []string{"render", "add", "--format", "html"},
			want: []string{"<!DOCTYPE html>", "<dialog ", "<style>"},
		},
		{
			name: "index css",
			args: []string{"render", "index", "--format", "css"},
			want: []string{".text-lg {", "@media (prefers-color-scheme: dark)"},
		},
		{
			name: "detail renders markdown",
			args: []string{"render", "detail", "--format", "html"},
			want: []string{"<em>anxiety</em>", "Back"},
		},
		{
			name: "empty listing",
			args: []string{"render", "empty", "--format", "html"},
			want: []string{"No games..."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := execute(t, tt.args...)
			for _, w := range tt.want {
				require.Contains(t, out, w)
			}
		})
	}
}

func TestSamplePageUnknown(t *testing.T) {
	_, _, err := samplePage("nope")
	require.Error(t, err)
}

func TestNewComposerRejectsBadSettings(t *testing.T) {
	_, err := newComposer("auto", "inline", "", false)
	require.Error(t, err)

	_, err = newComposer("media", "external", "", false)
	require.Error(t, err)

	c, err := newComposer("class", "linked", "/assets/app.css", true)
	require.NoError(t, err)
	require.Equal(t, "/assets/app.css", c.StylePath())
}
