package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"turfbook/internal/pkg/config"
	"turfbook/internal/pkg/errs"
)

const connectTimeout = 5 * time.Second

// NewPool builds and verifies a pgx connection pool from the DB config.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse database config")
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create connection pool")
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, errs.Wrap(err, "failed to ping database")
	}

	return pool, nil
}
