package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/metrics"
)

// gormSlotStore keeps the payload in one board_snapshots row keyed by slot
type gormSlotStore struct {
	db     *gorm.DB
	slot   string
	driver string
}

// NewGormBoardRepository creates a repository backed by a relational database row
func NewGormBoardRepository(db *gorm.DB, slot string, logger *zap.Logger, m *metrics.Metrics) *SnapshotRepository {
	return newSnapshotRepository(&gormSlotStore{
		db:     db,
		slot:   slot,
		driver: db.Dialector.Name(),
	}, logger, m)
}

func (s *gormSlotStore) backend() string {
	return s.driver
}

func (s *gormSlotStore) read(ctx context.Context) ([]byte, error) {
	var snapshot domain.BoardSnapshot
	err := s.db.WithContext(ctx).First(&snapshot, "slot = ?", s.slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errSlotEmpty
	}
	if err != nil {
		return nil, err
	}
	return snapshot.Payload, nil
}

func (s *gormSlotStore) write(ctx context.Context, payload []byte) error {
	snapshot := domain.BoardSnapshot{
		Slot:      s.slot,
		Payload:   datatypes.JSON(payload),
		UpdatedAt: time.Now().UTC(),
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&snapshot).Error
}
