package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/fittrack/pkg/cleanup"
)

type PoolOptions struct {
	MaxConns int32
	// Tracing attaches an OpenTelemetry tracer to every connection.
	Tracing bool
}

// NewPool creates the process wide pool, checks it and registers its
// closing as a cleanup job.
func NewPool(ctx context.Context, cfg DBConfig, opts PoolOptions) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("parsing pool config: %w", err)
	}
	if opts.MaxConns > 0 {
		poolCfg.MaxConns = opts.MaxConns
	}
	if opts.Tracing {
		poolCfg.ConnConfig.Tracer = otelpgx.NewTracer()
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating pool: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging pool: %w", err)
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	slog.Info("database pool ready", slog.Int("max_conns", int(poolCfg.MaxConns)))
	return pool, nil
}
