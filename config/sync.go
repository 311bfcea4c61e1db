package config

import (
	"time"

	apperrors "github.com/taskmill/taskmill/internal/errors"
)

const maxQueryPageSize = 100

// SyncConfig contains poll loop configuration.
type SyncConfig struct {
	// UpdateFrequencyMinutes is the poll interval in minutes.
	UpdateFrequencyMinutes int `env:"UPDATE_FREQUENCY" envDefault:"5"`

	// PageSize bounds each query result page; the hosted API caps it
	// at 100.
	PageSize int `env:"SYNC_PAGE_SIZE" envDefault:"100"`

	// RunImmediately runs the first cycle at startup instead of waiting
	// for the first tick.
	RunImmediately bool `env:"SYNC_RUN_IMMEDIATELY" envDefault:"true"`
}

// Interval returns the poll interval as a duration.
func (c *SyncConfig) Interval() time.Duration {
	return time.Duration(c.UpdateFrequencyMinutes) * time.Minute
}

// Sanitize clamps tuning values into their supported ranges.
func (c *SyncConfig) Sanitize() {
	if c.PageSize <= 0 || c.PageSize > maxQueryPageSize {
		c.PageSize = maxQueryPageSize
	}
}

// Validate rejects non-positive poll intervals.
func (c *SyncConfig) Validate() error {
	if c.UpdateFrequencyMinutes <= 0 {
		return apperrors.Configf("update frequency must be a positive number of minutes, got %d",
			c.UpdateFrequencyMinutes)
	}
	return nil
}
