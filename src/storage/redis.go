package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisBackend persists keys in Redis with no expiry.
type RedisBackend struct {
	rdb *redis.Client
}

func NewRedisBackend(rdb *redis.Client) *RedisBackend {
	return &RedisBackend{rdb: rdb}
}

func (b *RedisBackend) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := b.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (b *RedisBackend) Set(ctx context.Context, key, value string) error {
	return b.rdb.Set(ctx, key, value, 0).Err()
}

func (b *RedisBackend) Del(ctx context.Context, key string) error {
	return b.rdb.Del(ctx, key).Err()
}
