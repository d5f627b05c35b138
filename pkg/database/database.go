package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"finboard/pkg/logger"
)

// Pool settings sized for the free-tier Postgres the dashboard runs against:
// a single TLS connection, recycled aggressively.
const (
	maxConns        = 1
	maxConnIdleTime = 3 * time.Second
	connectTimeout  = 6 * time.Second
	// pgx recycles connections by age rather than by use count.
	maxConnLifetime = 30 * time.Minute
)

func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	config.MaxConns = maxConns
	config.MaxConnIdleTime = maxConnIdleTime
	config.MaxConnLifetime = maxConnLifetime
	config.ConnConfig.ConnectTimeout = connectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	log := logger.Get()
	log.Info().Msg("database connected")

	return pool, nil
}

func ClosePool(pool *pgxpool.Pool) {
	if pool != nil {
		pool.Close()
		log := logger.Get()
		log.Info().Msg("database disconnected")
	}
}
