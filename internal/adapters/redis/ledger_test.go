package redis

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmill/taskmill/internal/testutil"
)

func TestLedgerRecordAndLookup(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	ledger := NewLedgerWithPrefix(client, "taskmill-test:"+uuid.NewString()+":", time.Minute)
	ctx := context.Background()

	taskID := "task-" + uuid.NewString()

	was, err := ledger.WasScheduled(ctx, taskID)
	require.NoError(t, err)
	assert.False(t, was)

	due := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)
	require.NoError(t, ledger.RecordScheduled(ctx, taskID, due))

	was, err = ledger.WasScheduled(ctx, taskID)
	require.NoError(t, err)
	assert.True(t, was)

	// Unknown tasks stay unrecorded.
	other, err := ledger.WasScheduled(ctx, "task-"+uuid.NewString())
	require.NoError(t, err)
	assert.False(t, other)
}

func TestLedgerEntryExpires(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	ledger := NewLedgerWithPrefix(client, "taskmill-test:"+uuid.NewString()+":", 50*time.Millisecond)
	ctx := context.Background()

	taskID := "task-" + uuid.NewString()
	require.NoError(t, ledger.RecordScheduled(ctx, taskID, time.Now()))

	assert.Eventually(t, func() bool {
		was, err := ledger.WasScheduled(ctx, taskID)
		return err == nil && !was
	}, time.Second, 10*time.Millisecond)
}

func TestLedgerRejectsEmptyTaskID(t *testing.T) {
	ledger := NewLedger(nil, 0)

	_, err := ledger.WasScheduled(context.Background(), "")
	assert.Error(t, err)

	err = ledger.RecordScheduled(context.Background(), "", time.Now())
	assert.Error(t, err)
}

func TestNewLedgerDefaultTTL(t *testing.T) {
	ledger := NewLedger(nil, 0)
	assert.Equal(t, defaultLedgerTTL, ledger.ttl)
}
