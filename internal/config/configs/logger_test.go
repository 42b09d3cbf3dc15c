package configs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, Logger{Level: in}.SlogLevel(), in)
	}
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	log := Logger{Level: "warn", Format: "json"}.NewLogger(&buf)

	log.Info("dropped")
	log.Warn("kept", slog.String("campaign_id", "c1"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "c1", line["campaign_id"])
}
