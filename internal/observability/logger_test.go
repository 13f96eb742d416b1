package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/couchcryptid/unit-converter/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_UsesConfiguredLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logger := NewLogger(&config.Config{LogLevel: "warn", LogFormat: "json"})

	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))
	assert.Same(t, logger, slog.Default())
}

func TestNewWriterLogger_Levels(t *testing.T) {
	tests := []struct {
		in       string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			logger := NewWriterLogger(&bytes.Buffer{}, tt.in, "text")
			assert.True(t, logger.Enabled(context.Background(), tt.expected))
			assert.False(t, logger.Enabled(context.Background(), tt.expected-1))
		})
	}
}

func TestNewWriterLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, "info", "json")

	logger.Debug("hidden")
	logger.Info("conversion evaluated", "outcome", "converted")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "conversion evaluated", line["msg"])
	assert.Equal(t, "converted", line["outcome"])
}

func TestNewWriterLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	logger := NewWriterLogger(&buf, "warn", "text")

	logger.Info("hidden")
	logger.Warn("cache disabled")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=\"cache disabled\"")
	assert.Same(t, prev, slog.Default())
}

func TestNewMetricsForTesting_Independent(t *testing.T) {
	a := NewMetricsForTesting()
	b := NewMetricsForTesting()

	a.Conversions.WithLabelValues("converted", "http").Inc()
	assert.NotSame(t, a.Conversions, b.Conversions)
}
