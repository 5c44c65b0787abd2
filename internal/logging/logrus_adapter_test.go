package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
	}{
		{
			name:        "debug level with text format",
			level:       "debug",
			format:      "text",
			expectLevel: logrus.DebugLevel,
		},
		{
			name:        "info level with json format",
			level:       "info",
			format:      "json",
			expectLevel: logrus.InfoLevel,
		},
		{
			name:        "invalid level defaults to info",
			level:       "invalid",
			format:      "text",
			expectLevel: logrus.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			require.NotNil(t, logger)

			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok, "logger should be a LogrusAdapter")
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)

			if tt.format == "json" {
				_, ok := adapter.logger.Formatter.(*logrus.JSONFormatter)
				assert.True(t, ok, "formatter should be JSONFormatter")
			} else {
				_, ok := adapter.logger.Formatter.(*logrus.TextFormatter)
				assert.True(t, ok, "formatter should be TextFormatter")
			}
		})
	}
}

func TestNewLogrusAdapterFromLogger(t *testing.T) {
	existing := logrus.New()
	logger := NewLogrusAdapterFromLogger(existing)
	adapter, ok := logger.(*LogrusAdapter)
	require.True(t, ok)
	assert.Equal(t, existing, adapter.logger)

	adapter, ok = NewLogrusAdapterFromLogger(nil).(*LogrusAdapter)
	require.True(t, ok)
	assert.NotNil(t, adapter.logger)
}

func TestLogrusAdapter_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})
	base.SetLevel(logrus.DebugLevel)

	logger := NewLogrusAdapterFromLogger(base).
		WithField(FieldSheet, "Hoja1").
		WithError(errors.New("boom"))
	logger.Warn("sheet skipped", F(FieldRow, 12))

	out := buf.String()
	assert.Contains(t, out, `"sheet":"Hoja1"`)
	assert.Contains(t, out, `"row":12`)
	assert.Contains(t, out, `"error":"boom"`)
	assert.Contains(t, out, "sheet skipped")
}

func TestNewDiscardLogger(t *testing.T) {
	logger := NewDiscardLogger()
	assert.NotPanics(t, func() {
		logger.Info("dropped")
		logger.WithFields(F("a", 1)).Error("dropped too")
	})
}

func TestMockLogger_SharedSink(t *testing.T) {
	mock := NewMockLogger()
	child := mock.WithField(FieldFile, "a.xlsx")
	child.Warn("first")
	mock.Info("second")

	entries := mock.GetEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "WARN", entries[0].Level)
	assert.Equal(t, []Field{{Key: FieldFile, Value: "a.xlsx"}}, entries[0].Fields)
	assert.True(t, mock.HasEntry("INFO", "second"))
	assert.Len(t, mock.GetEntriesByLevel("WARN"), 1)
}
