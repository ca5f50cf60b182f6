package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"radio-quiz/internal/domain"
)

// ProgressStore keeps progress under a per-profile key.
// The value is the same JSON document the file backend writes:
//
//	SET quiz:progress:{profile} {"current_question_index":N,"score":M}
type ProgressStore struct {
	client  *redis.Client
	profile string
	ttl     time.Duration
}

// NewProgressStore creates the store. A ttl of zero keeps progress forever.
func NewProgressStore(client *redis.Client, profile string, ttl time.Duration) *ProgressStore {
	if profile == "" {
		profile = "default"
	}
	return &ProgressStore{client: client, profile: profile, ttl: ttl}
}

func (s *ProgressStore) Load(ctx context.Context) domain.ProgressState {
	raw, err := s.client.Get(ctx, s.key()).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("redis progress load failed, starting fresh: %v", err)
		}
		return domain.ProgressState{}
	}
	var state domain.ProgressState
	if err := json.Unmarshal(raw, &state); err != nil || !state.Valid() {
		return domain.ProgressState{}
	}
	return state
}

func (s *ProgressStore) Save(ctx context.Context, state domain.ProgressState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := s.client.Set(ctx, s.key(), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (s *ProgressStore) key() string {
	return "quiz:progress:" + s.profile
}
