package bootstrap

import (
	"context"
	"fmt"

	"holidaze-booking/internal/infra/store"
	"holidaze-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewDocumentStore,
	),
)

// NewDocumentStore selects the booking store backend from configuration.
// The memory driver needs no lifecycle; redis and postgres register their
// connection teardown with fx.
func NewDocumentStore(lc fx.Lifecycle, cfg config.Config) (store.DocumentStore, error) {
	switch cfg.Store.Driver {
	case "memory":
		return store.NewMemoryStore(), nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: cfg.Store.RedisAddr,
			DB:   cfg.Store.RedisDB,
		})
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return client.Ping(ctx).Err()
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		return store.NewRedisStore(client), nil

	case "postgres":
		pool, err := pgxpool.New(context.Background(), cfg.Store.BuildPostgresDSN())
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres pool: %w", err)
		}
		pgStore := store.NewPostgresStore(pool)
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := pool.Ping(ctx); err != nil {
					return err
				}
				return pgStore.EnsureSchema(ctx)
			},
			OnStop: func(_ context.Context) error {
				pool.Close()
				return nil
			},
		})
		return pgStore, nil

	default:
		return nil, fmt.Errorf("unknown store driver: %q", cfg.Store.Driver)
	}
}
