package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"kanban-board-api/internal/domain"
)

// MockBoardRepository is a mock implementation of repository.BoardRepository
type MockBoardRepository struct {
	LoadFunc func(ctx context.Context) []domain.Board
	SaveFunc func(ctx context.Context, boards []domain.Board) error

	mu    sync.Mutex
	saves [][]domain.Board
}

func (m *MockBoardRepository) Load(ctx context.Context) []domain.Board {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return []domain.Board{}
}

func (m *MockBoardRepository) Save(ctx context.Context, boards []domain.Board) error {
	m.mu.Lock()
	m.saves = append(m.saves, boards)
	m.mu.Unlock()
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, boards)
	}
	return nil
}

func (m *MockBoardRepository) Backend() string {
	return "mock"
}

func (m *MockBoardRepository) SaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.saves)
}

func (m *MockBoardRepository) LastSaved() []domain.Board {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.saves) == 0 {
		return nil
	}
	return m.saves[len(m.saves)-1]
}

// recordingSink collects every event it receives
type recordingSink struct {
	mu     sync.Mutex
	events []domain.Event
}

func (s *recordingSink) Notify(_ context.Context, ev domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *recordingSink) Events() []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Event(nil), s.events...)
}

func (s *recordingSink) Last() domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events[len(s.events)-1]
}

// noOpRecorder collects diagnostic no-ops
type noOpRecorder struct {
	mu    sync.Mutex
	noOps []NoOp
}

func (r *noOpRecorder) Observe(n NoOp) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.noOps = append(r.noOps, n)
}

func (r *noOpRecorder) Last() NoOp {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.noOps) == 0 {
		return NoOp{}
	}
	return r.noOps[len(r.noOps)-1]
}

func (r *noOpRecorder) All() []NoOp {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]NoOp(nil), r.noOps...)
}

func (r *noOpRecorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.noOps)
}

// sequentialIDs returns an id generator yielding prefix-1, prefix-2, ...
func sequentialIDs(prefix string) func() string {
	var (
		mu sync.Mutex
		n  int
	)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

var fixedNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

type engineFixture struct {
	engine   BoardEngine
	repo     *MockBoardRepository
	sink     *recordingSink
	observer *noOpRecorder
}

func newEngineFixture(seed []domain.Board) *engineFixture {
	repo := &MockBoardRepository{
		LoadFunc: func(context.Context) []domain.Board { return seed },
	}
	sink := &recordingSink{}
	observer := &noOpRecorder{}
	engine := NewBoardEngine(context.Background(), EngineConfig{
		Repository: repo,
		Sink:       sink,
		Observer:   observer.Observe,
		Now:        func() time.Time { return fixedNow },
		NewID:      sequentialIDs("id"),
	})
	return &engineFixture{engine: engine, repo: repo, sink: sink, observer: observer}
}

// twoColumnBoard has column A with [c1,c2] and column B with [c3,c4]
func twoColumnBoard() domain.Board {
	cards := map[string]domain.Card{}
	for _, id := range []string{"c1", "c2", "c3", "c4"} {
		cards[id] = domain.NewCard(id, "Card "+id, fixedNow)
	}
	return domain.Board{
		ID:    "b1",
		Title: "Board",
		Columns: []domain.Column{
			{ID: "A", Title: "Column A", CardIDs: []string{"c1", "c2"}},
			{ID: "B", Title: "Column B", CardIDs: []string{"c3", "c4"}},
		},
		Cards: cards,
	}
}
