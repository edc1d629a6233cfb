package vtkgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vtkgo-specific context.
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

// LogHeader logs a dataset header declaration.
func (l *Logger) LogHeader(t DataSetType, err error) {
	if err != nil {
		l.Error("header declaration failed",
			"dataset", t.String(),
			"error", err,
		)
	} else {
		l.Debug("header declared",
			"dataset", t.String(),
		)
	}
}

// LogInsertPoints logs a point insertion.
func (l *Logger) LogInsertPoints(count int, err error) {
	if err != nil {
		l.Error("point insertion failed",
			"count", count,
			"error", err,
		)
	} else {
		l.Debug("points inserted",
			"count", count,
		)
	}
}

// LogTopology logs a topology generation.
func (l *Logger) LogTopology(nTheta, mPhi, cells int, err error) {
	if err != nil {
		l.Error("topology generation failed",
			"rings", nTheta,
			"sectors", mPhi,
			"error", err,
		)
	} else {
		l.Debug("topology generated",
			"rings", nTheta,
			"sectors", mPhi,
			"cells", cells,
		)
	}
}

// LogAttribute logs an attribute append.
func (l *Logger) LogAttribute(block, kind, name string, count int, err error) {
	if err != nil {
		l.Error("attribute append failed",
			"block", block,
			"kind", kind,
			"name", name,
			"count", count,
			"error", err,
		)
	} else {
		l.Debug("attribute appended",
			"block", block,
			"kind", kind,
			"name", name,
			"count", count,
		)
	}
}

// LogFinalize logs document assembly.
func (l *Logger) LogFinalize(bytes int, err error) {
	if err != nil {
		l.Error("finalize failed",
			"error", err,
		)
	} else {
		l.Info("document assembled",
			"bytes", bytes,
		)
	}
}
