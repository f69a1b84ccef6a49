package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/metrics"
)

// errSlotEmpty is returned by a slotStore when nothing has been saved yet
var errSlotEmpty = errors.New("storage slot is empty")

// BoardRepository loads and saves the entire board collection
type BoardRepository interface {
	// Load returns the saved boards, or an empty collection when nothing usable is stored.
	Load(ctx context.Context) []domain.Board
	// Save overwrites the slot with the given collection.
	Save(ctx context.Context, boards []domain.Board) error
	// Backend names the storage backend for logs and metrics.
	Backend() string
}

// slotStore reads and writes the raw payload of one storage slot
type slotStore interface {
	read(ctx context.Context) ([]byte, error)
	write(ctx context.Context, payload []byte) error
	backend() string
}

// SnapshotRepository implements BoardRepository on top of a single-slot store
type SnapshotRepository struct {
	store   slotStore
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func newSnapshotRepository(store slotStore, logger *zap.Logger, m *metrics.Metrics) *SnapshotRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotRepository{store: store, logger: logger, metrics: m}
}

// Backend returns the storage backend name
func (r *SnapshotRepository) Backend() string {
	return r.store.backend()
}

// Load returns the stored boards. Missing, unreadable or inconsistent payloads load as empty.
func (r *SnapshotRepository) Load(ctx context.Context) []domain.Board {
	boards, err := r.LoadStrict(ctx)
	if err != nil {
		r.logger.Warn("Discarding stored boards",
			zap.String("backend", r.Backend()),
			zap.Error(err),
		)
		if r.metrics != nil {
			r.metrics.RecordCorruptLoad()
		}
		return []domain.Board{}
	}
	return boards
}

// LoadStrict is Load with the read or validation error reported to the caller
func (r *SnapshotRepository) LoadStrict(ctx context.Context) ([]domain.Board, error) {
	start := time.Now()
	payload, err := r.store.read(ctx)
	r.record("load", start, err)

	if errors.Is(err, errSlotEmpty) {
		return []domain.Board{}, nil
	}
	if err != nil {
		return nil, err
	}
	return DecodeBoards(payload)
}

// Save encodes and writes the collection, replacing whatever the slot held
func (r *SnapshotRepository) Save(ctx context.Context, boards []domain.Board) error {
	payload, err := EncodeBoards(boards)
	if err != nil {
		return err
	}

	start := time.Now()
	err = r.store.write(ctx, payload)
	r.record("save", start, err)
	if err != nil {
		return fmt.Errorf("failed to save boards to %s: %w", r.Backend(), err)
	}
	return nil
}

func (r *SnapshotRepository) record(op string, start time.Time, err error) {
	if r.metrics == nil {
		return
	}
	if errors.Is(err, errSlotEmpty) {
		err = nil
	}
	r.metrics.RecordStorageOperation(op, r.Backend(), time.Since(start), err)
}
