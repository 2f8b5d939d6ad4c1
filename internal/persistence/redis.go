package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/deskboard/internal/config"
)

// RedisSnapshotStore backs snapshots with plain Redis key-value entries.
type RedisSnapshotStore struct {
	client *redis.Client
}

// NewRedisSnapshotStore connects to Redis using the provided configuration.
func NewRedisSnapshotStore(cfg config.RedisConfig, logger *zap.Logger) *RedisSnapshotStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &RedisSnapshotStore{client: client}
}

// Load fetches the snapshot value for the key.
func (s *RedisSnapshotStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("loading snapshot %q: %w", key, err)
	}
	return data, nil
}

// Save stores the snapshot without expiry.
func (s *RedisSnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("saving snapshot %q: %w", key, err)
	}
	return nil
}

// Ping verifies Redis connectivity.
func (s *RedisSnapshotStore) Ping(ctx context.Context) error {
	if s == nil || s.client == nil {
		return errors.New("redis client not configured")
	}
	return s.client.Ping(ctx).Err()
}

// Close closes the client.
func (s *RedisSnapshotStore) Close() {
	if s != nil && s.client != nil {
		_ = s.client.Close()
	}
}
