package config

import (
	"log/slog"
	"strings"

	apperrors "github.com/taskmill/taskmill/internal/errors"
)

// LogConfig contains logging configuration.
type LogConfig struct {
	// Dir is the log output directory. Empty means log to stdout.
	Dir string `env:"LOG_DIR"`

	// Level is the log verbosity: debug, info, warn, or error.
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// MaxSizeMB is the size at which the log file is rotated.
	MaxSizeMB int `env:"LOG_MAX_SIZE_MB" envDefault:"50"`

	// MaxBackups is the number of rotated files to retain.
	MaxBackups int `env:"LOG_MAX_BACKUPS" envDefault:"3"`

	// MaxAgeDays is the retention age for rotated files.
	MaxAgeDays int `env:"LOG_MAX_AGE_DAYS" envDefault:"30"`
}

// Sanitize normalizes the level and clamps rotation settings.
func (c *LogConfig) Sanitize() {
	c.Level = strings.ToLower(strings.TrimSpace(c.Level))
	// "warning" is a common spelling; accept it.
	if c.Level == "warning" {
		c.Level = "warn"
	}
	if c.MaxSizeMB <= 0 {
		c.MaxSizeMB = 50
	}
	if c.MaxBackups < 0 {
		c.MaxBackups = 0
	}
	if c.MaxAgeDays < 0 {
		c.MaxAgeDays = 0
	}
}

// Validate rejects unknown log levels.
func (c *LogConfig) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps the configured level name onto a slog.Level.
func (c *LogConfig) SlogLevel() (slog.Level, error) {
	switch c.Level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, apperrors.Configf(
			"invalid log level %q (valid options: debug, info, warn, error)", c.Level)
	}
}
