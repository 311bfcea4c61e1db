package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/taskmill/taskmill/config"
	"github.com/taskmill/taskmill/internal/adapters/notion"
	redisledger "github.com/taskmill/taskmill/internal/adapters/redis"
	"github.com/taskmill/taskmill/internal/adapters/runner"
	"github.com/taskmill/taskmill/internal/core"
	"github.com/taskmill/taskmill/internal/observability/statsd"
	"github.com/taskmill/taskmill/internal/service"
)

// Runtime holds the built service graph and the resources that need
// closing on shutdown.
type Runtime struct {
	Runner *runner.Runner

	metricsSink *statsd.Client
	redisClient *redis.Client
	logger      *slog.Logger
}

// BuildRuntime constructs the sync runtime from configuration: hosted
// database client, optional ledger, metrics sink, sync service, and the
// poll runner. It verifies the Notion credentials with a ping before
// returning, so credential problems surface as a fatal startup error
// instead of a silently failing loop.
func BuildRuntime(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (*Runtime, error) {
	notionClient, err := notion.NewClient(notion.ClientOptions{
		Token:      cfg.Notion.Token,
		DatabaseID: cfg.Notion.DatabaseID,
		PageSize:   cfg.Sync.PageSize,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := notionClient.Ping(pingCtx); err != nil {
		return nil, fmt.Errorf("verify notion credentials: %w", err)
	}

	rt := &Runtime{logger: logger}

	ledger, err := rt.connectLedger(ctx, cfg)
	if err != nil {
		return nil, err
	}

	rt.metricsSink = buildMetricsSink(cfg.Observability.Metrics, logger)

	syncService, err := service.NewSyncService(service.SyncServiceOptions{
		DB:     notionClient,
		Ledger: ledger,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build sync service: %w", err)
	}

	var sink statsd.Sink
	if rt.metricsSink != nil {
		sink = rt.metricsSink
	}

	rt.Runner, err = runner.NewRunner(runner.RunnerOptions{
		Sync:           syncService,
		Interval:       cfg.Sync.Interval(),
		RunImmediately: cfg.Sync.RunImmediately,
		Logger:         logger,
		Metrics:        sink,
	})
	if err != nil {
		return nil, fmt.Errorf("build sync runner: %w", err)
	}

	return rt, nil
}

// connectLedger connects the optional Redis ledger backend. A
// configured but unreachable Redis is a startup error; an absent one is
// simply no ledger.
func (rt *Runtime) connectLedger(ctx context.Context, cfg *config.AppConfig) (core.SyncLedger, error) {
	if !cfg.Redis.Enabled() {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		if cerr := client.Close(); cerr != nil {
			rt.logger.Warn("close redis after failed ping", "error", cerr)
		}
		return nil, fmt.Errorf("connect redis ledger at %s: %w", cfg.Redis.Addr, err)
	}

	rt.redisClient = client
	rt.logger.Info("sync ledger enabled", "redis_addr", cfg.Redis.Addr, "ttl", cfg.Redis.LedgerTTL)
	return redisledger.NewLedger(client, cfg.Redis.LedgerTTL), nil
}

func buildMetricsSink(cfg config.MetricsConfig, logger *slog.Logger) *statsd.Client {
	if !cfg.IsEnabled() {
		return nil
	}

	client, err := statsd.NewClient(statsd.Config{
		Enabled: true,
		Address: cfg.StatsdAddress,
		Prefix:  "taskmill",
		Logger:  logger,
	})
	if err != nil {
		logger.Error("failed to initialise statsd client", "error", err)
		return nil
	}
	return client
}

// Close releases runtime resources. Safe to call on a partially built
// runtime.
func (rt *Runtime) Close() {
	if rt == nil {
		return
	}
	if rt.metricsSink != nil {
		if err := rt.metricsSink.Close(); err != nil {
			rt.logger.Error("close statsd sink failed", "error", err)
		}
	}
	if rt.redisClient != nil {
		if err := rt.redisClient.Close(); err != nil {
			rt.logger.Error("close redis failed", "error", err)
		}
	}
}

// RunWithShutdown runs the poll loop until the process receives SIGINT
// or SIGTERM, then returns nil for a graceful stop.
func RunWithShutdown(ctx context.Context, rt *Runtime) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return rt.Runner.Run(gctx)
	})

	return g.Wait()
}
