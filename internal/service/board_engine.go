package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/repository"
)

// DemoBoardTitle is the title of the board seeded into an empty store
const DemoBoardTitle = "Demo Board"

// DefaultSaveTimeout bounds a repository save when EngineConfig.SaveTimeout is zero
const DefaultSaveTimeout = 5 * time.Second

// maxIDAttempts bounds how many ids are drawn before an allocation gives up
const maxIDAttempts = 16

// BoardEngine owns the authoritative board collection.
//
// Every mutation builds a new collection, validates it, persists it and emits one event.
// Rejected calls leave the collection untouched and return false (or an empty id).
// Snapshots returned by the read accessors are shared and must be treated as read-only.
type BoardEngine interface {
	Boards() []domain.Board
	Board(boardID string) (domain.Board, bool)
	SelectedBoardID() (string, bool)
	SelectBoard(boardID string) bool
	Revision() uint64
	Totals() (boards, columns, cards int)

	CreateBoard(ctx context.Context, title string) (string, bool)
	CreateBoardWithColumns(ctx context.Context, title string, columnTitles []string) (string, bool)
	DeleteBoard(ctx context.Context, boardID string) bool
	AddColumn(ctx context.Context, boardID, title string) (string, bool)
	RenameColumn(ctx context.Context, boardID, columnID, title string) bool
	DeleteColumn(ctx context.Context, boardID, columnID string) bool
	AddCard(ctx context.Context, boardID, columnID, title string) (string, bool)
	UpdateCard(ctx context.Context, boardID, cardID string, patch domain.CardPatch) bool
	DeleteCard(ctx context.Context, boardID, cardID string) bool
	MoveCard(ctx context.Context, boardID, fromColumnID, toColumnID, cardID string, targetIndex *int) bool
	MoveColumn(ctx context.Context, boardID string, fromIndex, toIndex int) bool
	MoveColumnTo(ctx context.Context, boardID, columnID, overColumnID string) bool
}

// EngineConfig holds the collaborators of a BoardEngine. Only Repository is required.
//
// Observer is called with the engine lock held and must not call back into the engine.
// SaveTimeout caps each repository save, which also runs under the lock.
type EngineConfig struct {
	Repository    repository.BoardRepository
	Sink          NotificationSink
	Observer      NoOpObserver
	Metrics       *metrics.Metrics
	Logger        *zap.Logger
	Now           func() time.Time
	NewID         func() string
	SaveTimeout   time.Duration
	SeedDemoBoard bool
}

// boardEngine is the implementation of BoardEngine
type boardEngine struct {
	mu       sync.RWMutex
	boards   []domain.Board
	selected string
	revision uint64

	repo     repository.BoardRepository
	sink     NotificationSink
	observer NoOpObserver
	metrics  *metrics.Metrics
	logger   *zap.Logger
	now      func() time.Time
	newID    func() string

	saveTimeout time.Duration
}

// NewBoardEngine loads the stored collection and returns an engine serving it
func NewBoardEngine(ctx context.Context, cfg EngineConfig) BoardEngine {
	e := &boardEngine{
		repo:     cfg.Repository,
		sink:     cfg.Sink,
		observer: cfg.Observer,
		metrics:  cfg.Metrics,
		logger:   cfg.Logger,
		now:      cfg.Now,
		newID:    cfg.NewID,

		saveTimeout: cfg.SaveTimeout,
	}
	if e.sink == nil {
		e.sink = NopSink{}
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.newID == nil {
		e.newID = uuid.NewString
	}
	if e.saveTimeout <= 0 {
		e.saveTimeout = DefaultSaveTimeout
	}

	e.boards = e.repo.Load(ctx)
	if len(e.boards) == 0 && cfg.SeedDemoBoard {
		// held in memory only; the first mutation persists it
		if demo := e.newBoard(DemoBoardTitle, domain.DefaultColumnTitles()); demo.ID != "" {
			e.boards = []domain.Board{demo}
		}
	}

	e.logger.Info("Board engine initialized",
		zap.String("backend", e.repo.Backend()),
		zap.Int("boards", len(e.boards)),
	)
	e.updateTotals()
	return e
}

// Boards returns the current collection snapshot
func (e *boardEngine) Boards() []domain.Board {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.boards
}

// Board returns the board with the given id
func (e *boardEngine) Board(boardID string) (domain.Board, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if i := domain.FindBoard(e.boards, boardID); i >= 0 {
		return e.boards[i], true
	}
	return domain.Board{}, false
}

// SelectedBoardID returns the selected board, if any
func (e *boardEngine) SelectedBoardID() (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.selected, e.selected != ""
}

// SelectBoard marks a known board as selected. Selection is never persisted.
func (e *boardEngine) SelectBoard(boardID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if domain.FindBoard(e.boards, boardID) < 0 {
		e.reject(OpSelectBoard, ReasonBoardNotFound, boardID)
		return false
	}
	e.selected = boardID
	return true
}

// Revision returns a counter bumped by every successful mutation
func (e *boardEngine) Revision() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.revision
}

// Totals reports board, column and card counts
func (e *boardEngine) Totals() (boards, columns, cards int) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	columns, cards = domain.CountCards(e.boards)
	return len(e.boards), columns, cards
}

// commit installs next as the current collection. The caller holds e.mu.
func (e *boardEngine) commit(ctx context.Context, op string, next []domain.Board, event domain.Event) bool {
	if err := domain.ValidateBoards(next); err != nil {
		e.logger.Error("Mutation would break board invariants",
			zap.String("operation", op),
			zap.String("board_id", event.BoardID),
			zap.Error(err),
		)
		e.reject(op, ReasonInvariantViolation, event.BoardID)
		return false
	}

	e.boards = next
	e.revision++

	// persistence and delivery outlive the request that triggered them
	ctx = context.WithoutCancel(ctx)

	e.persist(ctx, op, next)

	if e.metrics != nil {
		e.metrics.RecordMutation(op)
	}
	e.updateTotals()

	event.Revision = e.revision
	event.OccurredAt = e.now()
	e.sink.Notify(ctx, event)

	e.logger.Debug("Board mutation applied",
		zap.String("operation", op),
		zap.String("board_id", event.BoardID),
		zap.Uint64("revision", e.revision),
	)
	return true
}

// persist saves next within the save timeout. A failure keeps the in-memory state.
func (e *boardEngine) persist(ctx context.Context, op string, next []domain.Board) {
	saveCtx, cancel := context.WithTimeout(ctx, e.saveTimeout)
	defer cancel()

	err := e.repo.Save(saveCtx, next)
	if err == nil {
		return
	}

	cause := "error"
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(saveCtx.Err(), context.DeadlineExceeded) {
		cause = "timeout"
	}
	e.logger.Warn("Failed to persist boards; keeping in-memory state",
		zap.String("operation", op),
		zap.String("backend", e.repo.Backend()),
		zap.String("cause", cause),
		zap.Duration("timeout", e.saveTimeout),
		zap.Error(err),
	)
	if e.metrics != nil {
		e.metrics.RecordPersistFailure(op, cause)
	}
}

// reject reports a no-op to the logger, metrics and observer
func (e *boardEngine) reject(op string, reason NoOpReason, boardID string) {
	e.logger.Debug("Operation rejected",
		zap.String("operation", op),
		zap.String("reason", string(reason)),
		zap.String("board_id", boardID),
	)
	if e.metrics != nil {
		e.metrics.RecordNoOp(op, string(reason))
	}
	if e.observer != nil {
		e.observer(NoOp{Operation: op, Reason: reason, BoardID: boardID})
	}
}

func (e *boardEngine) updateTotals() {
	if e.metrics == nil {
		return
	}
	columns, cards := domain.CountCards(e.boards)
	e.metrics.SetBoardTotals(len(e.boards), columns, cards)
}

// allocateID draws ids until one is not taken
func (e *boardEngine) allocateID(taken func(string) bool) (string, bool) {
	for i := 0; i < maxIDAttempts; i++ {
		id := e.newID()
		if id != "" && !taken(id) {
			return id, true
		}
	}
	return "", false
}

// newBoard builds a board with one empty column per title
func (e *boardEngine) newBoard(title string, columnTitles []string) domain.Board {
	boardID, _ := e.allocateID(func(id string) bool { return domain.FindBoard(e.boards, id) >= 0 })

	b := domain.Board{
		ID:      boardID,
		Title:   title,
		Columns: make([]domain.Column, 0, len(columnTitles)),
		Cards:   map[string]domain.Card{},
	}
	for _, ct := range columnTitles {
		colID, _ := e.allocateID(func(id string) bool { return b.ColumnIndex(id) >= 0 })
		b.Columns = append(b.Columns, domain.Column{ID: colID, Title: ct, CardIDs: []string{}})
	}
	return b
}
