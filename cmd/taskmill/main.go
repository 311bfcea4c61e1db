// Command taskmill polls a Notion todo database on a fixed interval and
// creates the next occurrence of any recurring task that comes due.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskmill/taskmill/config"
	"github.com/taskmill/taskmill/internal/bootstrap"
)

var flags struct {
	notionToken     string
	databaseID      string
	updateFrequency int
	logDir          string
	logLevel        string
}

var rootCmd = &cobra.Command{
	Use:   "taskmill",
	Short: "Recurring-task sync daemon for a Notion todo database",
	Long: `taskmill scans a Notion todo database on a fixed interval. Tasks with a
"recurring frequency" select and a "Due Date" that falls within one
recurrence period are cloned forward: a new task is created with the due
date advanced by the frequency, and the source task is marked scheduled.

Configuration comes from environment variables (NOTION_TOKEN,
DATABASE_ID, UPDATE_FREQUENCY, ...) or a .env file; the flags below
override the environment.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd)
	},
}

func init() {
	rootCmd.Flags().StringVar(&flags.notionToken, "notion-token", "", "Notion API token")
	rootCmd.Flags().StringVar(&flags.databaseID, "database-id", "", "Notion database ID")
	rootCmd.Flags().IntVar(&flags.updateFrequency, "update-frequency", 5,
		"poll interval in minutes")
	rootCmd.Flags().StringVar(&flags.logDir, "log-dir", "",
		"log output directory (default: stdout)")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "info",
		"log level: debug, info, warn, error")
}

func main() {
	logger := bootstrap.InitLogger()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, &cfg)
	cfg.Sanitize()

	if err = cfg.Validate(); err != nil {
		return err
	}

	logger, err := bootstrap.NewLogger(cfg.Log)
	if err != nil {
		return err
	}

	logStartupInfo(ctx, logger, &cfg)

	rt, err := bootstrap.BuildRuntime(ctx, &cfg, logger)
	if err != nil {
		logger.ErrorContext(ctx, "startup failed", "error", err)
		return err
	}
	defer rt.Close()

	return bootstrap.RunWithShutdown(ctx, rt)
}

// applyFlagOverrides lets explicit command line flags win over the
// environment. Only flags the user actually set are applied.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.AppConfig) {
	fs := cmd.Flags()
	if fs.Changed("notion-token") {
		cfg.Notion.Token = flags.notionToken
	}
	if fs.Changed("database-id") {
		cfg.Notion.DatabaseID = flags.databaseID
	}
	if fs.Changed("update-frequency") {
		cfg.Sync.UpdateFrequencyMinutes = flags.updateFrequency
	}
	if fs.Changed("log-dir") {
		cfg.Log.Dir = flags.logDir
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.InfoContext(ctx, "starting taskmill",
		"database_id", cfg.Notion.DatabaseID,
		"interval", cfg.Sync.Interval(),
		"ledger_enabled", cfg.Redis.Enabled(),
		"metrics_enabled", cfg.Observability.Metrics.IsEnabled(),
	)
}
