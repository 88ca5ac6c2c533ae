package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewDefaultLogger(LevelWarn, &buf)

	logger.Debug("hidden %d", 1)
	logger.Info("hidden %d", 2)
	logger.Warn("shown %d", 3)
	logger.Error("shown %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] shown 3")
	assert.Contains(t, out, "[ERROR] shown 4")
}

func TestDefaultLoggerWithField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewDefaultLogger(LevelInfo, &buf)

	ranked := logger.WithField("rank", 3).WithField("size", 8)
	ranked.Info("exchange done")

	assert.Contains(t, buf.String(), "rank=3 size=8 exchange done")

	// The parent logger is unchanged.
	buf.Reset()
	logger.Info("plain")
	assert.NotContains(t, buf.String(), "rank=")
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLogLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLogLevel("WARNING"))
	assert.Equal(t, LevelInfo, ParseLogLevel("unknown"))
}

func TestNullLogger(t *testing.T) {
	logger := &NullLogger{}
	assert.Equal(t, Logger(logger), logger.WithField("rank", 0))
	logger.Info("dropped")
}
