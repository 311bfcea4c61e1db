// Package redis provides Redis-based adapters for taskmill.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taskmill/taskmill/internal/core"
)

const defaultLedgerTTL = 30 * 24 * time.Hour

// Ledger is a Redis-backed sync ledger. It remembers which rows already
// had their next occurrence created, guarding against double-cloning
// when the hosted service's write propagation lags behind the next
// poll. Entries expire after a TTL; the checkbox on the row is the
// durable record.
type Ledger struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

var _ core.SyncLedger = (*Ledger)(nil)

// NewLedger creates a Redis-backed ledger with the default key prefix.
func NewLedger(client redis.UniversalClient, ttl time.Duration) *Ledger {
	return NewLedgerWithPrefix(client, "taskmill:scheduled:", ttl)
}

// NewLedgerWithPrefix creates a Redis-backed ledger with a custom key prefix.
func NewLedgerWithPrefix(client redis.UniversalClient, prefix string, ttl time.Duration) *Ledger {
	if ttl <= 0 {
		ttl = defaultLedgerTTL
	}
	return &Ledger{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// WasScheduled reports whether the task already has a ledger entry.
func (l *Ledger) WasScheduled(ctx context.Context, taskID string) (bool, error) {
	if taskID == "" {
		return false, errors.New("task ID cannot be empty")
	}

	n, err := l.client.Exists(ctx, l.prefix+taskID).Result()
	if err != nil {
		return false, fmt.Errorf("ledger lookup %s: %w", taskID, err)
	}
	return n > 0, nil
}

// RecordScheduled writes a ledger entry for the task. The stored value
// is the due date of the created occurrence, for operator inspection.
func (l *Ledger) RecordScheduled(ctx context.Context, taskID string, due time.Time) error {
	if taskID == "" {
		return errors.New("task ID cannot be empty")
	}

	value := due.UTC().Format(time.RFC3339)
	if err := l.client.Set(ctx, l.prefix+taskID, value, l.ttl).Err(); err != nil {
		return fmt.Errorf("ledger record %s: %w", taskID, err)
	}
	return nil
}
