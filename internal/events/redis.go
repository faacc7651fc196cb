package events

import (
	"context"
	"encoding/json"
	"fmt"

	"wallet-ledger/internal/model"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher fans ledger events out on a pub/sub channel.
type RedisPublisher struct {
	rdb     redis.UniversalClient
	channel string
}

var _ Publisher = (*RedisPublisher)(nil)

func NewRedisPublisher(rdb redis.UniversalClient, channel string) *RedisPublisher {
	return &RedisPublisher{rdb: rdb, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, events []*model.LedgerEvent) error {
	if len(events) == 0 {
		return nil
	}

	pipe := p.rdb.Pipeline()
	for _, ev := range events {
		payload, err := json.Marshal(toMessage(ev))
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", ev.ID, err)
		}
		pipe.Publish(ctx, p.channel, payload)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

// Close is a no-op; the redis client is shared with the cache and closed by its owner.
func (p *RedisPublisher) Close() error {
	return nil
}
