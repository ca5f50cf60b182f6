package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"radio-quiz/internal/domain"
)

// ProgressStore keeps one progress row per profile in quiz_progress.
type ProgressStore struct {
	pool    *pgxpool.Pool
	profile string
}

func NewProgressStore(pool *pgxpool.Pool, profile string) *ProgressStore {
	if profile == "" {
		profile = "default"
	}
	return &ProgressStore{pool: pool, profile: profile}
}

func (s *ProgressStore) Load(ctx context.Context) domain.ProgressState {
	var state domain.ProgressState
	err := s.pool.QueryRow(ctx,
		`SELECT current_question_index, score FROM quiz_progress WHERE profile=$1`,
		s.profile,
	).Scan(&state.CurrentIndex, &state.Score)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			log.Printf("postgres progress load failed, starting fresh: %v", err)
		}
		return domain.ProgressState{}
	}
	if !state.Valid() {
		return domain.ProgressState{}
	}
	return state
}

func (s *ProgressStore) Save(ctx context.Context, state domain.ProgressState) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO quiz_progress (profile, current_question_index, score, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (profile) DO UPDATE
		SET current_question_index = EXCLUDED.current_question_index,
		    score = EXCLUDED.score,
		    updated_at = EXCLUDED.updated_at`,
		s.profile, state.CurrentIndex, state.Score,
	)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
