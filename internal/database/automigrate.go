package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// AutoMigrate creates or updates the tables backing the board repository
func AutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()
	existed := migrator.HasTable(&domain.BoardSnapshot{})

	if err := db.AutoMigrate(&domain.BoardSnapshot{}); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}

	if existed {
		logger.Info("Table schema verified", zap.String("table", domain.BoardSnapshot{}.TableName()))
	} else {
		logger.Info("Table created", zap.String("table", domain.BoardSnapshot{}.TableName()))
	}
	return nil
}
