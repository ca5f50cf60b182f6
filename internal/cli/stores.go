package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"

	"radio-quiz/internal/app"
	"radio-quiz/internal/config"
	"radio-quiz/internal/domain"
	"radio-quiz/internal/infra/file"
	"radio-quiz/internal/infra/memory"
	pgstore "radio-quiz/internal/infra/postgres"
	redisstore "radio-quiz/internal/infra/redis"
	"radio-quiz/internal/infra/sqlite"
)

// openProgressStore builds the configured progress backend. The returned
// func releases its connections.
func openProgressStore(ctx context.Context, cfg config.Config) (app.ProgressStore, func(), error) {
	noop := func() {}
	profile := cfg.Progress.Profile

	switch backend := strings.ToLower(cfg.Progress.Backend); backend {
	case "", "file":
		return file.NewProgressStore(cfg.Progress.File), noop, nil

	case "memory":
		return memory.NewProgressStore(domain.ProgressState{}), noop, nil

	case "redis":
		if cfg.Redis.Addr == "" {
			return nil, noop, fmt.Errorf("%w: redis addr is empty", domain.ErrBackendNotConfigured)
		}
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ttl := config.TTLDuration(cfg.Redis.TTL, 0)
		return redisstore.NewProgressStore(client, profile, ttl), func() { _ = client.Close() }, nil

	case "postgres":
		if cfg.Postgres.URL == "" {
			return nil, noop, fmt.Errorf("%w: postgres url is empty", domain.ErrBackendNotConfigured)
		}
		if _, err := pgstore.Migrate(ctx, cfg.Postgres.URL); err != nil {
			return nil, noop, fmt.Errorf("migrate: %w", err)
		}
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, noop, err
		}
		return pgstore.NewProgressStore(pool, profile), pool.Close, nil

	case "sqlite":
		store, err := sqlite.Open(ctx, cfg.SQLite.Path, profile)
		if err != nil {
			return nil, noop, err
		}
		return store, func() { _ = store.Close() }, nil

	default:
		return nil, noop, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, backend)
	}
}
