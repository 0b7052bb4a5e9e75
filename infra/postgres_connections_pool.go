package infra

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewPostgresConnectionPool(ctx context.Context, connectionString string, maxPoolConnections int) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(connectionString)
	if err != nil {
		return nil, errors.Wrap(err, "parse connection pool config")
	}
	cfg.ConnConfig.Tracer = otelpgx.NewTracer()
	if maxPoolConnections <= 0 {
		maxPoolConnections = DEFAULT_MAX_CONNECTIONS
	}
	cfg.MaxConns = int32(maxPoolConnections)

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create connection pool")
	}
	return pool, nil
}
