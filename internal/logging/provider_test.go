package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnknownOptions(t *testing.T) {
	_, err := New(Config{Format: "xml"})
	require.Error(t, err)

	_, err = New(Config{Level: "chatty"})
	require.Error(t, err)
}

func TestGetLogger(t *testing.T) {
	for _, format := range []string{"", "console", "json", "pretty"} {
		t.Run(format, func(t *testing.T) {
			p, err := New(Config{Level: "error", Format: format})
			require.NoError(t, err)

			log := p.GetLogger("server")
			require.NotNil(t, log)
			require.NotNil(t, log.WithContext(context.Background()))
			log.Debug("suppressed", "k", "v")
		})
	}
}

func TestNilProviderFallsBack(t *testing.T) {
	var p *GoLogger
	require.Equal(t, NoOp(), p.GetLogger("x"))
	require.Equal(t, NoOp(), OrNoOp(nil))
}
