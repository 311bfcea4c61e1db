// Package mocks provides generated mock implementations for testing taskmill.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the port interfaces in internal/core. To regenerate after interface changes:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	db := mocks.NewMockTaskDatabase(ctrl)
//	db.EXPECT().QueryDue(gomock.Any()).Return(tasks, nil)
package mocks

// Generate mock for the TaskDatabase port from internal/core.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=task_database_mock.go github.com/taskmill/taskmill/internal/core TaskDatabase

// Generate mock for the SyncLedger port from internal/core.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=sync_ledger_mock.go github.com/taskmill/taskmill/internal/core SyncLedger
