package repository

import (
	"context"
	"sync"
)

type memorySlotStore struct {
	mu      sync.Mutex
	payload []byte
	saved   bool
}

// NewMemoryBoardRepository creates a process-local repository, used by tests and dry runs
func NewMemoryBoardRepository() *SnapshotRepository {
	return newSnapshotRepository(&memorySlotStore{}, nil, nil)
}

func (s *memorySlotStore) backend() string {
	return "memory"
}

func (s *memorySlotStore) read(context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.saved {
		return nil, errSlotEmpty
	}
	return append([]byte(nil), s.payload...), nil
}

func (s *memorySlotStore) write(_ context.Context, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payload = append([]byte(nil), payload...)
	s.saved = true
	return nil
}
