package job

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/repository"
)

// Backup run results recorded in kanban_board_backup_runs_total
const (
	BackupSuccess = "success"
	BackupFailure = "failure"
	BackupSkipped = "skipped"
)

// BoardSource is the read side of the board engine
type BoardSource interface {
	Boards() []domain.Board
	Revision() uint64
}

// BackupJob copies the current board collection into a secondary repository
type BackupJob struct {
	source  BoardSource
	target  repository.BoardRepository
	metrics *metrics.Metrics
	logger  *zap.Logger
	timeout time.Duration

	mu           sync.Mutex
	lastRevision uint64
	backedUp     bool
}

// NewBackupJob creates a new BackupJob instance
func NewBackupJob(source BoardSource, target repository.BoardRepository, m *metrics.Metrics, logger *zap.Logger) *BackupJob {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BackupJob{
		source:  source,
		target:  target,
		metrics: m,
		logger:  logger,
		timeout: 30 * time.Second,
	}
}

// Run executes one backup. Collections unchanged since the last successful copy are skipped.
func (j *BackupJob) Run() {
	j.mu.Lock()
	defer j.mu.Unlock()

	revision := j.source.Revision()
	if j.backedUp && revision == j.lastRevision {
		j.logger.Debug("Board collection unchanged, skipping backup", zap.Uint64("revision", revision))
		j.record(BackupSkipped)
		return
	}

	boards := j.source.Boards()

	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	if err := j.target.Save(ctx, boards); err != nil {
		j.logger.Error("Board backup failed",
			zap.String("backend", j.target.Backend()),
			zap.Uint64("revision", revision),
			zap.Error(err),
		)
		j.record(BackupFailure)
		return
	}

	j.lastRevision = revision
	j.backedUp = true
	j.record(BackupSuccess)

	j.logger.Info("Board backup completed",
		zap.String("backend", j.target.Backend()),
		zap.Uint64("revision", revision),
		zap.Int("boards", len(boards)),
		zap.Duration("duration", time.Since(start)),
	)
}

func (j *BackupJob) record(result string) {
	if j.metrics != nil {
		j.metrics.RecordBackupRun(result)
	}
}
