package antok

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, nil))

	logger.WithGeneration(3).WithSegments(100).Info("checkpoint")

	out := buf.String()
	assert.Contains(t, out, "generation=3")
	assert.Contains(t, out, "segments=100")
}

func TestNoopLogger_Discards(t *testing.T) {
	logger := NoopLogger()

	assert.False(t, logger.Enabled(nil, slog.LevelError))
}
