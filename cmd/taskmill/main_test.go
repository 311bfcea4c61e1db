package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmill/taskmill/config"
)

func TestApplyFlagOverrides(t *testing.T) {
	cfg := config.AppConfig{}
	cfg.Notion.Token = "env-token"
	cfg.Notion.DatabaseID = "env-db"
	cfg.Sync.UpdateFrequencyMinutes = 5
	cfg.Log.Level = "info"

	fs := rootCmd.Flags()
	require.NoError(t, fs.Set("notion-token", "flag-token"))
	require.NoError(t, fs.Set("update-frequency", "10"))
	require.NoError(t, fs.Set("log-level", "debug"))

	applyFlagOverrides(rootCmd, &cfg)

	// Set flags win over the environment.
	assert.Equal(t, "flag-token", cfg.Notion.Token)
	assert.Equal(t, 10, cfg.Sync.UpdateFrequencyMinutes)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Unset flags leave the environment values alone.
	assert.Equal(t, "env-db", cfg.Notion.DatabaseID)
	assert.Empty(t, cfg.Log.Dir)
}
