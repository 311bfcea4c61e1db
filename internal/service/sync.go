// Package service contains the business logic for taskmill sync cycles.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/taskmill/taskmill/internal/core"
	"github.com/taskmill/taskmill/internal/domain/model"
)

// SyncServiceOptions groups dependencies for SyncService.
type SyncServiceOptions struct {
	DB     core.TaskDatabase // Required: hosted database port
	Ledger core.SyncLedger   // Optional: idempotency guard
	Logger *slog.Logger      // Optional: structured logger
}

// CycleStats summarises one fetch-transform-write pass.
type CycleStats struct {
	// Matched is the number of rows returned by the query filter.
	Matched int
	// Created is the number of next occurrences created.
	Created int
	// Skipped counts rows that were ineligible or malformed.
	Skipped int
	// Failed counts rows whose writes failed. Failures never abort the
	// cycle for other rows.
	Failed int
}

// SyncService scans the todo database and creates the next occurrence of
// any recurring task that comes due within one recurrence period.
//
// The hosted service is the sole source of truth; the service holds row
// data in memory only for the duration of one cycle.
type SyncService struct {
	db     core.TaskDatabase
	ledger core.SyncLedger
	logger *slog.Logger
}

// NewSyncService constructs a new SyncService.
func NewSyncService(opts SyncServiceOptions) (*SyncService, error) {
	if opts.DB == nil {
		return nil, errors.New("TaskDatabase is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &SyncService{
		db:     opts.DB,
		ledger: opts.Ledger,
		logger: logger.With("component", "sync_service"),
	}, nil
}

// RunCycle performs one poll cycle at the given time: query candidate
// rows, clone the eligible ones forward, mark the sources scheduled.
//
// A non-nil error is returned only for whole-cycle failures (the query
// itself failed). Per-row failures are logged, counted in the returned
// stats, and do not affect other rows or the next cycle.
func (s *SyncService) RunCycle(ctx context.Context, now time.Time) (CycleStats, error) {
	var stats CycleStats

	logger := s.logger.With("cycle_id", uuid.NewString())

	tasks, err := s.db.QueryDue(ctx)
	if err != nil {
		return stats, fmt.Errorf("query due tasks: %w", err)
	}
	stats.Matched = len(tasks)

	for _, task := range tasks {
		if ctx.Err() != nil {
			return stats, fmt.Errorf("cycle interrupted: %w", ctx.Err())
		}

		switch s.processTask(ctx, logger, now, task) {
		case outcomeCreated:
			stats.Created++
		case outcomeSkipped:
			stats.Skipped++
		case outcomeFailed:
			stats.Failed++
		}
	}

	logger.InfoContext(ctx, "cycle complete",
		"matched", stats.Matched,
		"created", stats.Created,
		"skipped", stats.Skipped,
		"failed", stats.Failed,
	)
	return stats, nil
}

type taskOutcome int

const (
	outcomeSkipped taskOutcome = iota
	outcomeCreated
	outcomeFailed
)

// processTask handles a single row. It never returns an error: per-row
// problems are logged here and reduced to an outcome so the caller's
// loop stays trivial.
func (s *SyncService) processTask(
	ctx context.Context,
	logger *slog.Logger,
	now time.Time,
	task model.Task,
) taskOutcome {
	if task.Due == nil {
		logger.InfoContext(ctx, "due date not set, skipping", "task_id", task.ID)
		return outcomeSkipped
	}
	if !task.Frequency.Valid() {
		logger.InfoContext(ctx, "no recognized frequency, skipping", "task_id", task.ID)
		return outcomeSkipped
	}
	if !task.ShouldSchedule(now) {
		return outcomeSkipped
	}
	if s.alreadyInLedger(ctx, logger, task.ID) {
		logger.DebugContext(ctx, "ledger marks task scheduled, skipping", "task_id", task.ID)
		return outcomeSkipped
	}

	nextDue, ok := task.NextDue()
	if !ok {
		// Unreachable after the guards above, but a malformed row must
		// never take down the cycle.
		logger.WarnContext(ctx, "cannot compute next due date, skipping", "task_id", task.ID)
		return outcomeSkipped
	}

	clone, err := s.db.CreateNextOccurrence(ctx, task, nextDue)
	if err != nil {
		logger.ErrorContext(ctx, "create next occurrence failed",
			"task_id", task.ID, "error", err)
		return outcomeFailed
	}

	if task.HasScheduledFlag {
		if err := s.db.MarkScheduled(ctx, task.ID); err != nil {
			logger.ErrorContext(ctx, "mark source task scheduled failed",
				"task_id", task.ID, "clone_id", clone.ID, "error", err)
			return outcomeFailed
		}
	}

	s.recordInLedger(ctx, logger, task.ID, nextDue)

	logger.InfoContext(ctx, "created next occurrence",
		"task_id", task.ID,
		"clone_id", clone.ID,
		"due", nextDue.Format(time.RFC3339),
		"frequency", string(task.Frequency),
	)
	return outcomeCreated
}

// alreadyInLedger consults the optional ledger. Ledger errors degrade to
// "not recorded": the checkbox on the row remains the authoritative guard.
func (s *SyncService) alreadyInLedger(ctx context.Context, logger *slog.Logger, taskID string) bool {
	if s.ledger == nil {
		return false
	}
	was, err := s.ledger.WasScheduled(ctx, taskID)
	if err != nil {
		logger.WarnContext(ctx, "ledger lookup failed", "task_id", taskID, "error", err)
		return false
	}
	return was
}

func (s *SyncService) recordInLedger(ctx context.Context, logger *slog.Logger, taskID string, due time.Time) {
	if s.ledger == nil {
		return
	}
	if err := s.ledger.RecordScheduled(ctx, taskID, due); err != nil {
		logger.WarnContext(ctx, "ledger record failed", "task_id", taskID, "error", err)
	}
}
