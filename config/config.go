// Package config defines the taskmill application configuration.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library, optionally overridden by command
// line flags. See individual domain config files for details on
// available environment variables:
//   - notion.go: hosted database credentials and target
//   - sync.go: poll interval and cycle tuning
//   - logging.go: log destination, level, and rotation
//   - redis.go: optional sync ledger backend
//   - observability.go: metrics configuration
package config

import (
	apperrors "github.com/taskmill/taskmill/internal/errors"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
type AppConfig struct {
	// Notion holds the hosted database credentials and target id.
	Notion NotionConfig

	// Sync holds the poll loop configuration.
	Sync SyncConfig

	// Log holds the logging configuration.
	Log LogConfig

	// Redis holds the optional sync ledger backend configuration.
	Redis RedisConfig `envPrefix:"REDIS_"`

	// Observability holds the metrics configuration.
	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment
// variables and applying flag overrides.
func (c *AppConfig) Sanitize() {
	c.Sync.Sanitize()
	c.Log.Sanitize()
}

// Validate checks the configuration for fatal problems. Any error it
// returns is a config error: the process should log it and exit
// non-zero rather than start a poll loop that cannot work.
func (c *AppConfig) Validate() error {
	if err := c.Notion.Validate(); err != nil {
		return err
	}
	if err := c.Sync.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return nil
}

// requireNonEmpty is the shared guard for required string settings.
func requireNonEmpty(value, name string) error {
	if value == "" {
		return apperrors.Configf("%s is required", name)
	}
	return nil
}
