package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zhmistake/internal/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(logging.Config{Level: "warn", Format: "json", Writer: &buf})
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("maker failed", "maker", "MissingWordMaker")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"maker failed"`)
	assert.Contains(t, out, `"maker":"MissingWordMaker"`)
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(logging.Config{Writer: &buf})
	require.NoError(t, err)
	l.Info("ready", "n", 3)
	assert.Contains(t, buf.String(), "msg=ready n=3")
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New(logging.Config{Format: "xml"})
	assert.Error(t, err)
	_, err = logging.New(logging.Config{Level: "loud"})
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { logging.Discard().Error("dropped") })
}
