package repository

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"kanban-board-api/internal/metrics"
)

type redisSlotStore struct {
	redis *redis.Client
	key   string
}

// NewRedisBoardRepository creates a repository storing the collection under one Redis key
func NewRedisBoardRepository(rdb *redis.Client, key string, logger *zap.Logger, m *metrics.Metrics) *SnapshotRepository {
	return newSnapshotRepository(&redisSlotStore{redis: rdb, key: key}, logger, m)
}

func (s *redisSlotStore) backend() string {
	return "redis"
}

func (s *redisSlotStore) read(ctx context.Context) ([]byte, error) {
	data, err := s.redis.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errSlotEmpty
	}
	return data, err
}

func (s *redisSlotStore) write(ctx context.Context, payload []byte) error {
	return s.redis.Set(ctx, s.key, payload, 0).Err()
}
