package store

import (
	"context"
	"errors"

	"holidaze-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists documents as plain string values, one Redis key per
// document key, under a common prefix.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: "holidaze:"}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}
		return nil, errs.Wrap(err, "redis get")
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return errs.Wrap(err, "redis set")
	}
	return nil
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return errs.Wrap(err, "redis del")
	}
	return nil
}

var _ DocumentStore = (*RedisStore)(nil)
