package repository

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kanban-board-api/internal/config"
	"kanban-board-api/internal/metrics"
)

func TestOpenStorage_SQLite(t *testing.T) {
	cfg := config.Default()
	cfg.Database.SQLitePath = ":memory:"
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())

	s, err := OpenStorage(context.Background(), cfg, zap.NewNop(), m)
	require.NoError(t, err)
	defer s.Close()

	assert.NotNil(t, s.DB)
	assert.Nil(t, s.Redis)
	assert.Equal(t, "sqlite", s.Repository.Backend())

	ctx := context.Background()
	require.NoError(t, s.Repository.Save(ctx, sampleBoards()))
	assert.Len(t, s.Repository.Load(ctx), 2)

	backup, err := s.BackupRepository(ctx, cfg, zap.NewNop(), m)
	require.NoError(t, err)
	assert.Nil(t, backup, "no bucket means no backups")
}

func TestOpenStorage_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.Default()
	cfg.Storage.Backend = config.BackendRedis
	cfg.Redis.URL = "redis://" + mr.Addr()

	s, err := OpenStorage(context.Background(), cfg, nil, nil)
	require.NoError(t, err)

	require.NotNil(t, s.Redis)
	assert.Nil(t, s.DB)
	assert.Equal(t, "redis", s.Repository.Backend())

	require.NoError(t, s.Repository.Save(context.Background(), sampleBoards()))
	assert.True(t, mr.Exists(cfg.Storage.Slot))

	require.NoError(t, s.Close())
}

func TestOpenStorage_SQLiteWithRedisEvents(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.Default()
	cfg.Database.SQLitePath = ":memory:"
	cfg.Redis.URL = "redis://" + mr.Addr()

	s, err := OpenStorage(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	defer s.Close()

	assert.NotNil(t, s.DB)
	assert.NotNil(t, s.Redis, "redis is opened for event publishing")
}

func TestOpenStorage_Errors(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*config.Config)
	}{
		{name: "unknown backend", apply: func(c *config.Config) { c.Storage.Backend = "etcd" }},
		{name: "unreachable redis", apply: func(c *config.Config) {
			c.Storage.Backend = config.BackendRedis
			c.Redis.URL = "redis://127.0.0.1:1"
		}},
		{name: "s3 endpoint without keys", apply: func(c *config.Config) {
			c.Storage.Backend = config.BackendS3
			c.S3 = config.S3Config{Bucket: "b", Region: "us-east-1", Endpoint: "http://localhost:9000"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.apply(cfg)
			_, err := OpenStorage(context.Background(), cfg, nil, nil)
			assert.Error(t, err)
		})
	}
}
