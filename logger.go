package antok

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with antok-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithGeneration adds a generation field to the logger.
func (l *Logger) WithGeneration(gen int) *Logger {
	return &Logger{
		Logger: l.Logger.With("generation", gen),
	}
}

// WithSegments adds a segment count field to the logger.
func (l *Logger) WithSegments(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("segments", count),
	}
}

// LogGeneration logs the completion of one training generation.
func (l *Logger) LogGeneration(ctx context.Context, gen, segments, vocabSize int, elapsed time.Duration) {
	l.InfoContext(ctx, "generation completed",
		"generation", gen,
		"segments", segments,
		"vocab_size", vocabSize,
		"elapsed", elapsed,
	)
}

// LogSelection logs a natural-selection pass.
func (l *Logger) LogSelection(ctx context.Context, before, after int, threshold float64) {
	l.DebugContext(ctx, "natural selection",
		"before", before,
		"after", after,
		"threshold", threshold,
	)
}

// LogTrainingComplete logs the end of a full training run.
func (l *Logger) LogTrainingComplete(ctx context.Context, generations, vocabSize int, elapsed time.Duration) {
	l.InfoContext(ctx, "training completed",
		"generations", generations,
		"vocab_size", vocabSize,
		"elapsed", elapsed,
	)
}
