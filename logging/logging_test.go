package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/A-Alhammadi/Intro-to-AI/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tc := range tests {
		got, err := logging.ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := logging.ParseLevel("loud")
	assert.ErrorIs(t, err, logging.ErrInvalidLevel)
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New("warn", "text", &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "node", "Harper")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "node=Harper")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New("debug", "json", &buf)
	require.NoError(t, err)

	logger.Debug("expand", "node", "A", "depth", 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "expand", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "A", rec["node"])
	assert.Equal(t, 2.0, rec["depth"])
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New("info", "xml", &bytes.Buffer{})
	assert.ErrorIs(t, err, logging.ErrInvalidFormat)
	assert.False(t, logging.ValidFormat("xml"))
	assert.True(t, logging.ValidFormat("JSON"))

	_, err = logging.New("chatty", "text", &bytes.Buffer{})
	assert.ErrorIs(t, err, logging.ErrInvalidLevel)
}

func TestDiscard(t *testing.T) {
	logger := logging.Discard()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}
