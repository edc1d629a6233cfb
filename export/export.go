// Package export batches the emission of many documents per pipeline run.
//
// A Manager builds and emits jobs concurrently with bounded parallelism and
// an optional byte-rate budget shared across all uploads, so a bulk export
// does not saturate the link a live measurement pipeline depends on.
package export

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hupe1980/vtkgo/emit"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Job is one document to export: a target name and a builder producing the
// assembled text. Build runs on the manager's worker goroutines and must not
// share a Writer with another job.
type Job struct {
	Name  string
	Build func() (string, error)
}

// Manager runs export jobs against one Emitter.
type Manager struct {
	emitter     *emit.Emitter
	concurrency int
	limiter     *rate.Limiter
	logger      *slog.Logger
}

// Options configures a Manager.
type Options struct {
	// Concurrency bounds the number of jobs in flight. Default: 4.
	Concurrency int

	// BytesPerSecond budgets the document bytes emitted per second across
	// all jobs. 0 disables throttling.
	BytesPerSecond int

	// Logger receives structured per-job logs. Default: discard.
	Logger *slog.Logger
}

// NewManager creates a Manager emitting through the given Emitter.
func NewManager(emitter *emit.Emitter, optFns ...func(o *Options)) *Manager {
	opts := Options{
		Concurrency: 4,
		Logger:      slog.New(slog.DiscardHandler),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	m := &Manager{
		emitter:     emitter,
		concurrency: opts.Concurrency,
		logger:      opts.Logger,
	}
	if opts.BytesPerSecond > 0 {
		m.limiter = rate.NewLimiter(rate.Limit(opts.BytesPerSecond), opts.BytesPerSecond)
	}
	return m
}

// Run builds and emits all jobs. The first failure cancels the remaining
// jobs and is returned. Jobs whose builder yields an empty document are
// skipped the same way a direct Emit of an empty document is.
func (m *Manager) Run(ctx context.Context, jobs []Job) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)

	for _, job := range jobs {
		g.Go(func() error {
			doc, err := job.Build()
			if err != nil {
				m.logger.ErrorContext(ctx, "build failed", "name", job.Name, "error", err)
				return fmt.Errorf("export %s: %w", job.Name, err)
			}

			if err := m.wait(ctx, len(doc)); err != nil {
				return err
			}

			if err := m.emitter.Emit(ctx, job.Name, doc); err != nil {
				return err
			}
			m.logger.DebugContext(ctx, "job exported", "name", job.Name, "bytes", len(doc))
			return nil
		})
	}

	return g.Wait()
}

// wait blocks until the byte budget admits n more bytes.
func (m *Manager) wait(ctx context.Context, n int) error {
	if m.limiter == nil || n == 0 {
		return nil
	}
	// WaitN caps n at the limiter burst; larger documents draw the budget in
	// burst-sized installments.
	burst := m.limiter.Burst()
	for n > 0 {
		chunk := n
		if chunk > burst {
			chunk = burst
		}
		if err := m.limiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}
