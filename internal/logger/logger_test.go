package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedback-browser/internal/logger"
)

func TestLoggerInitialization(t *testing.T) {
	require.NotNil(t, logger.Logger, "Logger should be initialized on package load")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warning", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "loud", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := logger.ParseLevel(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := logger.ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatText, f)

	f, err = logger.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatJSON, f)

	_, err = logger.ParseFormat("xml")
	assert.Error(t, err)
}

func TestConfigureJSONWithRequest(t *testing.T) {
	original := logger.Logger
	defer func() { logger.Logger = original }()

	var buf bytes.Buffer
	logger.Configure(&buf, slog.LevelInfo, logger.FormatJSON)

	logger.WithRequest("req-123").Info("filtered feedback", "record_count", 4)
	logger.Debug("dropped below level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "filtered feedback", entry["msg"])
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, float64(4), entry["record_count"])
}

func TestConfigureText(t *testing.T) {
	original := logger.Logger
	defer func() { logger.Logger = original }()

	var buf bytes.Buffer
	logger.Configure(&buf, slog.LevelDebug, logger.FormatText)
	logger.WithComponent("grouping").Debug("calling collaborator")

	assert.Contains(t, buf.String(), "component=grouping")
	assert.Contains(t, buf.String(), "calling collaborator")
}
