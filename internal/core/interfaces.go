// Package core defines the port interfaces between the sync service and
// its adapters (hexagonal architecture). Service code depends on these
// interfaces, never on concrete implementations, so tests can substitute
// in-memory fakes for the hosted database.
package core

import (
	"context"
	"time"

	"github.com/taskmill/taskmill/internal/domain/model"
)

// TaskDatabase is the capability interface over the hosted todo
// database. The concrete adapter owns all transport, request shaping,
// and authentication; callers supply ids and handle results.
type TaskDatabase interface {
	// QueryDue returns all rows whose recurring-frequency select and
	// due-date properties are both set, following pagination cursors to
	// exhaustion.
	QueryDue(ctx context.Context) ([]model.Task, error)

	// CreateNextOccurrence clones the source row into a new row with
	// the given due date. The clone's scheduled checkbox starts false.
	CreateNextOccurrence(ctx context.Context, source model.Task, due time.Time) (model.Task, error)

	// MarkScheduled sets the scheduled checkbox on the row so it is not
	// cloned again.
	MarkScheduled(ctx context.Context, taskID string) error
}

// Pinger is implemented by adapters that can verify their credentials
// up front. A failing ping at startup is fatal.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SyncLedger records which rows have already had their next occurrence
// created. It guards against double-cloning when the hosted service's
// write propagation lags behind the next poll. A nil ledger is valid;
// the checkbox on the row is then the only guard.
type SyncLedger interface {
	WasScheduled(ctx context.Context, taskID string) (bool, error)
	RecordScheduled(ctx context.Context, taskID string, due time.Time) error
}
