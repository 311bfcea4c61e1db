// Package bootstrap wires configuration, logging, and services together
// for the taskmill entrypoint.
package bootstrap

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/taskmill/taskmill/config"
)

// LoadConfig loads configuration from environment variables. A .env
// file in the working directory is honored for development; its absence
// is not an error. Flag overrides and validation are the caller's
// responsibility, because flags are parsed after the environment.
func LoadConfig() (config.AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return config.AppConfig{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var cfg config.AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}
