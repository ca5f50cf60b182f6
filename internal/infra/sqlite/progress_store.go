package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3"

	"radio-quiz/internal/domain"
)

const createProgressTable = `CREATE TABLE IF NOT EXISTS quiz_progress (
	profile TEXT PRIMARY KEY,
	current_question_index INTEGER NOT NULL DEFAULT 0,
	score INTEGER NOT NULL DEFAULT 0,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// ProgressStore keeps progress in a local SQLite database.
type ProgressStore struct {
	db      *sql.DB
	profile string
}

// Open opens (creating if needed) the database at path and its progress table.
func Open(ctx context.Context, path, profile string) (*ProgressStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, createProgressTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create progress table: %w", err)
	}
	if profile == "" {
		profile = "default"
	}
	return &ProgressStore{db: db, profile: profile}, nil
}

func (s *ProgressStore) Close() error {
	return s.db.Close()
}

func (s *ProgressStore) Load(ctx context.Context) domain.ProgressState {
	var state domain.ProgressState
	err := s.db.QueryRowContext(ctx,
		`SELECT current_question_index, score FROM quiz_progress WHERE profile = ?`,
		s.profile,
	).Scan(&state.CurrentIndex, &state.Score)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("sqlite progress load failed, starting fresh: %v", err)
		}
		return domain.ProgressState{}
	}
	if !state.Valid() {
		return domain.ProgressState{}
	}
	return state
}

func (s *ProgressStore) Save(ctx context.Context, state domain.ProgressState) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO quiz_progress (profile, current_question_index, score, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(profile) DO UPDATE SET
			current_question_index = excluded.current_question_index,
			score = excluded.score,
			updated_at = excluded.updated_at`,
		s.profile, state.CurrentIndex, state.Score,
	)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
