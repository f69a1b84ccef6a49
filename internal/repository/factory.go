package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanban-board-api/internal/client"
	"kanban-board-api/internal/config"
	"kanban-board-api/internal/database"
	"kanban-board-api/internal/metrics"
)

// Storage is the board repository selected by configuration plus the connections behind it.
// DB and Redis are nil when the backend does not use them.
type Storage struct {
	Repository *SnapshotRepository
	DB         *gorm.DB
	Redis      *redis.Client
	Objects    client.ObjectStore

	closers []func() error
}

// OpenStorage connects the configured backend. Redis is also opened for a sql or s3
// backend when redis.url is set, so events can be published.
func OpenStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) (*Storage, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Storage{}

	switch cfg.Storage.Backend {
	case config.BackendSQLite, config.BackendPostgres:
		db, err := openDatabase(cfg, logger, m)
		if err != nil {
			return nil, err
		}
		s.DB = db
		s.closers = append(s.closers, func() error { return database.Close(db) })
		s.Repository = NewGormBoardRepository(db, cfg.Storage.Slot, logger, m)

	case config.BackendRedis:
		rdb, err := database.NewRedis(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, err
		}
		s.Redis = rdb
		s.closers = append(s.closers, rdb.Close)
		s.Repository = NewRedisBoardRepository(rdb, cfg.Storage.Slot, logger, m)

	case config.BackendS3:
		objects, err := client.NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		s.Objects = objects
		s.Repository = NewS3BoardRepository(objects, cfg.Storage.Slot, logger, m)

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	if s.Redis == nil && cfg.Redis.URL != "" {
		rdb, err := database.NewRedis(ctx, cfg.Redis, logger)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.Redis = rdb
		s.closers = append(s.closers, rdb.Close)
	}

	logger.Info("Board storage opened",
		zap.String("backend", s.Repository.Backend()),
		zap.String("slot", cfg.Storage.Slot),
	)
	return s, nil
}

// BackupRepository returns an S3 repository for backups, or nil when no bucket is configured
func (s *Storage) BackupRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) (*SnapshotRepository, error) {
	if cfg.S3.Bucket == "" {
		return nil, nil
	}
	objects := s.Objects
	if objects == nil {
		s3Client, err := client.NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		objects = s3Client
	}
	return NewS3BoardRepository(objects, cfg.Storage.Slot+".backup", logger, m), nil
}

// Close releases every connection opened by OpenStorage
func (s *Storage) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}

func openDatabase(cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) (*gorm.DB, error) {
	dbConfig := database.Config{
		Driver:          database.DriverPostgres,
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
	if cfg.Storage.Backend == config.BackendSQLite {
		dbConfig.Driver = database.DriverSQLite
		dbConfig.DSN = cfg.Database.SQLitePath
	}

	db, err := database.New(dbConfig)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db, logger); err != nil {
		database.Close(db)
		return nil, err
	}
	if m != nil {
		if err := database.RegisterMetricsCallbacks(db, m); err != nil {
			logger.Warn("Failed to register database metrics callbacks", zap.Error(err))
		}
	}

	logger.Info("Database connected successfully", zap.String("driver", dbConfig.Driver))
	return db, nil
}
