package db

import (
	"context"
	"log"
	"time"

	"github.com/RBMarketing1011/restaunax/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect builds the pgx pool. Connections are opened lazily, and a failed
// ping is only a warning: the order dashboard degrades to demo data when the
// store is unreachable, so the server must still come up.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	poolCfg.MaxConns = int32(cfg.MaxConns)
	poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		log.Printf("database unreachable, orders will serve demo data: %v", err)
	}

	return pool, nil
}
