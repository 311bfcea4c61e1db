// Package runner provides the ticker loop that drives periodic sync cycles.
package runner

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/taskmill/taskmill/internal/clock"
	"github.com/taskmill/taskmill/internal/observability/metrics"
	"github.com/taskmill/taskmill/internal/observability/statsd"
	"github.com/taskmill/taskmill/internal/service"
)

// CycleService runs one fetch-transform-write pass.
type CycleService interface {
	RunCycle(ctx context.Context, now time.Time) (service.CycleStats, error)
}

// Runner drives the sync service on a fixed interval. Cycles run
// synchronously on the runner goroutine, so at most one cycle is ever
// in flight; ticks that fire while a cycle is still running are dropped
// by the ticker.
type Runner struct {
	sync         CycleService
	interval     time.Duration
	cycleTimeout time.Duration
	immediate    bool
	logger       *slog.Logger
	clock        clock.Clock
	metrics      statsd.Sink
}

// RunnerOptions holds the dependencies for creating a Runner.
type RunnerOptions struct {
	Sync     CycleService
	Interval time.Duration
	Logger   *slog.Logger

	// CycleTimeout bounds a single cycle. Defaults to Interval, so one
	// wedged API call can never stall the loop past a tick.
	CycleTimeout time.Duration

	// RunImmediately runs the first cycle before the first tick.
	RunImmediately bool

	// Optional dependency injections for testing/decoupling
	Clock   clock.Clock
	Metrics statsd.Sink
}

// NewRunner creates a new sync runner with the given options.
func NewRunner(opts RunnerOptions) (*Runner, error) {
	if err := validateRunnerOptions(&opts); err != nil {
		return nil, err
	}

	return &Runner{
		sync:         opts.Sync,
		interval:     opts.Interval,
		cycleTimeout: opts.CycleTimeout,
		immediate:    opts.RunImmediately,
		logger:       opts.Logger,
		clock:        opts.Clock,
		metrics:      opts.Metrics,
	}, nil
}

// validateRunnerOptions validates and sets defaults for RunnerOptions.
func validateRunnerOptions(opts *RunnerOptions) error {
	if opts.Sync == nil {
		return errors.New("cycle service is required")
	}
	if opts.Interval <= 0 {
		return errors.New("interval must be positive")
	}
	if opts.CycleTimeout <= 0 {
		opts.CycleTimeout = opts.Interval
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	return nil
}

// Run starts the sync loop and runs until the context is cancelled.
// Returns nil on graceful shutdown (context.Canceled), error otherwise.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.InfoContext(ctx, "starting sync runner",
		"interval", r.interval, "cycle_timeout", r.cycleTimeout)

	if r.immediate {
		r.runOnce(ctx)
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.InfoContext(ctx, "sync runner stopping", "reason", ctx.Err())
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()

		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

// runOnce executes a single cycle under the cycle timeout and emits the
// per-cycle metric set. Cycle errors are absorbed here: the loop keeps
// ticking regardless.
func (r *Runner) runOnce(parent context.Context) {
	if parent.Err() != nil {
		return
	}

	ctx, cancel := context.WithTimeout(parent, r.cycleTimeout)
	defer cancel()

	start := time.Now()
	stats, err := r.sync.RunCycle(ctx, r.clock.Now())
	elapsed := time.Since(start)

	r.emitCycleMetrics(stats, elapsed, err)

	switch {
	case err != nil:
		r.logger.ErrorContext(parent, "sync cycle failed", "error", err, "elapsed", elapsed)
	case stats.Created > 0 || stats.Failed > 0:
		r.logger.InfoContext(parent, "sync cycle finished",
			"matched", stats.Matched,
			"created", stats.Created,
			"skipped", stats.Skipped,
			"failed", stats.Failed,
			"elapsed", elapsed,
		)
	default:
		r.logger.DebugContext(parent, "sync cycle finished with nothing to do", "elapsed", elapsed)
	}
}

func (r *Runner) emitCycleMetrics(stats service.CycleStats, elapsed time.Duration, err error) {
	if r.metrics == nil {
		return
	}

	result := metrics.ResultSuccess
	switch {
	case err != nil:
		result = metrics.ResultError
	case stats.Matched == 0:
		result = metrics.ResultNoop
	}

	metrics.EmitCycle(r.metrics, metrics.CycleMetric{
		Result:   result,
		Created:  int64(stats.Created),
		Failed:   int64(stats.Failed),
		Duration: elapsed,
		Err:      err,
	})
}
