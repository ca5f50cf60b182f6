package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"radio-quiz/internal/domain"
)

// DefaultPath is the progress file name, relative to the working directory.
const DefaultPath = "user_progress.json"

// ProgressStore keeps progress in a small JSON file that is rewritten on every save.
type ProgressStore struct {
	path string
}

func NewProgressStore(path string) *ProgressStore {
	if path == "" {
		path = DefaultPath
	}
	return &ProgressStore{path: path}
}

// Path returns the file backing the store.
func (s *ProgressStore) Path() string {
	return s.path
}

// Load returns the stored progress, or the zero state if the file is absent or unreadable.
func (s *ProgressStore) Load(_ context.Context) domain.ProgressState {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return domain.ProgressState{}
	}
	var state domain.ProgressState
	if err := json.Unmarshal(data, &state); err != nil || !state.Valid() {
		return domain.ProgressState{}
	}
	return state
}

// Save overwrites the file. The write is not atomic; a torn file loads as the zero state.
func (s *ProgressStore) Save(_ context.Context, state domain.ProgressState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	return nil
}
