package memory

import (
	"context"
	"sync"

	"radio-quiz/internal/domain"
)

// ProgressStore is an in-memory implementation of app.ProgressStore.
type ProgressStore struct {
	mu    sync.RWMutex
	state domain.ProgressState
	saves int
}

func NewProgressStore(initial domain.ProgressState) *ProgressStore {
	return &ProgressStore{state: initial}
}

func (s *ProgressStore) Load(_ context.Context) domain.ProgressState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.state.Valid() {
		return domain.ProgressState{}
	}
	return s.state
}

func (s *ProgressStore) Save(_ context.Context, state domain.ProgressState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.saves++
	return nil
}

// Saves reports how many times Save was called.
func (s *ProgressStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
