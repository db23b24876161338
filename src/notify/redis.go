package notify

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const streamToasts = "stockdesk.toasts"

// RedisPublisher fans toast events out on a Redis stream that the frontend
// gateway tails.
type RedisPublisher struct {
	rdb *redis.Client
}

func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

func (p *RedisPublisher) PublishToast(ctx context.Context, t Toast) error {
	_, err := p.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: streamToasts,
		Values: map[string]any{
			"id":       t.ID,
			"severity": string(t.Severity),
			"message":  t.Message,
			"time":     t.CreatedAt.Unix(),
		},
	}).Result()
	return err
}
