package vtkgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordSection is called after each builder call. section is one of the
	// Section* constants, lines is the section's current line count (0 on
	// failure), err is nil if the call succeeded.
	RecordSection(section string, lines int, err error)

	// RecordFinalize is called after each Finalize. bytes is the assembled
	// document size (0 on failure).
	RecordFinalize(bytes int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSection(string, int, error)         {}
func (NoopMetricsCollector) RecordFinalize(int, time.Duration, error) {}

// BasicMetricsCollector is a thread-safe in-memory MetricsCollector.
type BasicMetricsCollector struct {
	sectionCalls   atomic.Int64
	sectionErrors  atomic.Int64
	finalizeCalls  atomic.Int64
	finalizeErrors atomic.Int64
	documentBytes  atomic.Int64
}

// MetricsStats is a point-in-time snapshot of a BasicMetricsCollector.
type MetricsStats struct {
	SectionCalls   int64
	SectionErrors  int64
	FinalizeCalls  int64
	FinalizeErrors int64
	DocumentBytes  int64
}

func (c *BasicMetricsCollector) RecordSection(_ string, _ int, err error) {
	c.sectionCalls.Add(1)
	if err != nil {
		c.sectionErrors.Add(1)
	}
}

func (c *BasicMetricsCollector) RecordFinalize(bytes int, _ time.Duration, err error) {
	c.finalizeCalls.Add(1)
	if err != nil {
		c.finalizeErrors.Add(1)
		return
	}
	c.documentBytes.Add(int64(bytes))
}

// GetStats returns a snapshot of the collected counters.
func (c *BasicMetricsCollector) GetStats() MetricsStats {
	return MetricsStats{
		SectionCalls:   c.sectionCalls.Load(),
		SectionErrors:  c.sectionErrors.Load(),
		FinalizeCalls:  c.finalizeCalls.Load(),
		FinalizeErrors: c.finalizeErrors.Load(),
		DocumentBytes:  c.documentBytes.Load(),
	}
}
