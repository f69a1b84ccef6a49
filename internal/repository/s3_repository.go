package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"kanban-board-api/internal/client"
	"kanban-board-api/internal/metrics"
)

const jsonContentType = "application/json"

type s3SlotStore struct {
	objects client.ObjectStore
	key     string
}

// NewS3BoardRepository creates a repository storing the collection as one object
func NewS3BoardRepository(objects client.ObjectStore, key string, logger *zap.Logger, m *metrics.Metrics) *SnapshotRepository {
	return newSnapshotRepository(&s3SlotStore{objects: objects, key: key + ".json"}, logger, m)
}

func (s *s3SlotStore) backend() string {
	return "s3"
}

func (s *s3SlotStore) read(ctx context.Context) ([]byte, error) {
	data, err := s.objects.GetObject(ctx, s.key)
	if errors.Is(err, client.ErrObjectNotFound) {
		return nil, errSlotEmpty
	}
	return data, err
}

func (s *s3SlotStore) write(ctx context.Context, payload []byte) error {
	return s.objects.PutObject(ctx, s.key, payload, jsonContentType)
}
