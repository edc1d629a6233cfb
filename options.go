package vtkgo

import (
	"log/slog"

	"github.com/hupe1980/vtkgo/numfmt"
)

type options struct {
	format           numfmt.Formatter
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures Writer construction.
type Option func(*options)

// WithFormatter overrides the numeric formatter used for all section
// payloads. The default is numfmt.Fixed10, the fixed 10-fractional-digit
// invariant formatter the legacy format is written with.
func WithFormatter(f numfmt.Formatter) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithLogger configures structured logging for builder operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring builder
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		format:           numfmt.Fixed10,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
