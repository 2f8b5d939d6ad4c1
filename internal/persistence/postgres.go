package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/spec-kit/deskboard/internal/config"
)

// PostgresSnapshotStore backs snapshots with a single key-value table.
type PostgresSnapshotStore struct {
	pool *pgxpool.Pool
}

// NewPostgresSnapshotStore establishes a connection pool and ensures the
// snapshots table exists.
func NewPostgresSnapshotStore(ctx context.Context, cfg config.PostgresConfig, logger *zap.Logger) (*PostgresSnapshotStore, error) {
	if cfg.DSN == "" {
		return nil, errors.New("POSTGRES_DSN required for the postgres storage driver")
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.ConnMaxIdleSec > 0 {
		poolCfg.MaxConnIdleTime = time.Duration(cfg.ConnMaxIdleSec) * time.Second
	}
	if cfg.ConnMaxLifeSec > 0 {
		poolCfg.MaxConnLifetime = time.Duration(cfg.ConnMaxLifeSec) * time.Second
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	const bootstrap = `
        CREATE TABLE IF NOT EXISTS snapshots (
            key        TEXT PRIMARY KEY,
            data       JSONB NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`
	if _, err := pool.Exec(ctx, bootstrap); err != nil {
		pool.Close()
		return nil, fmt.Errorf("bootstrapping snapshots table: %w", err)
	}

	logger.Info("connected to postgres")
	return &PostgresSnapshotStore{pool: pool}, nil
}

// Load fetches the snapshot row for the key.
func (s *PostgresSnapshotStore) Load(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT data FROM snapshots WHERE key=$1`
	var data []byte
	if err := s.pool.QueryRow(ctx, query, key).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("loading snapshot %q: %w", key, err)
	}
	return data, nil
}

// Save upserts the snapshot row.
func (s *PostgresSnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	const query = `
        INSERT INTO snapshots (key, data, updated_at) VALUES ($1, $2, NOW())
        ON CONFLICT (key) DO UPDATE SET data=EXCLUDED.data, updated_at=NOW()`
	if _, err := s.pool.Exec(ctx, query, key, data); err != nil {
		return fmt.Errorf("saving snapshot %q: %w", key, err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *PostgresSnapshotStore) Ping(ctx context.Context) error {
	if s == nil || s.pool == nil {
		return errors.New("postgres pool not configured")
	}
	return s.pool.Ping(ctx)
}

// Close releases pool resources.
func (s *PostgresSnapshotStore) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}
