package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wallet-ledger/internal/model"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "wallet:"

// setScript stores a wallet only when its version is not older than the
// invalidation floor or the version already cached.
var setScript = redis.NewScript(`
local floor = tonumber(redis.call('GET', KEYS[2]) or '-1')
local version = tonumber(ARGV[2])
if version < floor then
    return 0
end
local current = redis.call('GET', KEYS[1])
if current then
    local ok, cached = pcall(cjson.decode, current)
    if ok and type(cached) == 'table' and tonumber(cached['version']) and tonumber(cached['version']) > version then
        return 0
    end
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
return 1
`)

// invalidateScript raises the floor to the committed version and drops the value.
var invalidateScript = redis.NewScript(`
local floor = tonumber(redis.call('GET', KEYS[2]) or '-1')
if tonumber(ARGV[1]) > floor then
    redis.call('SET', KEYS[2], ARGV[1], 'PX', ARGV[2])
end
redis.call('DEL', KEYS[1])
return 1
`)

type RedisWalletCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

var _ WalletCache = (*RedisWalletCache)(nil)

func NewRedisWalletCache(client redis.UniversalClient, ttl time.Duration) *RedisWalletCache {
	return &RedisWalletCache{client: client, ttl: ttl}
}

// Both keys of a wallet share a hash slot so the scripts also run on a cluster.
func key(userID string) string {
	return keyPrefix + "{" + userID + "}"
}

func floorKey(userID string) string {
	return key(userID) + ":floor"
}

func (c *RedisWalletCache) Get(ctx context.Context, userID string) (*model.Wallet, error) {
	raw, err := c.client.Get(ctx, key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	w := &model.Wallet{}
	if err := json.Unmarshal(raw, w); err != nil {
		// a value we cannot decode is as good as absent
		_ = c.client.Del(ctx, key(userID)).Err()
		return nil, ErrCacheMiss
	}
	return w, nil
}

func (c *RedisWalletCache) Set(ctx context.Context, w *model.Wallet) error {
	raw, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("marshal wallet: %w", err)
	}
	keys := []string{key(w.UserID), floorKey(w.UserID)}
	if err := setScript.Run(ctx, c.client, keys, raw, w.Version, c.ttl.Milliseconds()).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Invalidate keeps the floor for the cache TTL, which bounds how long a reader
// may hold a snapshot between its database read and its Set.
func (c *RedisWalletCache) Invalidate(ctx context.Context, userID string, version int64) error {
	keys := []string{key(userID), floorKey(userID)}
	if err := invalidateScript.Run(ctx, c.client, keys, version, c.ttl.Milliseconds()).Err(); err != nil {
		return fmt.Errorf("redis invalidate: %w", err)
	}
	return nil
}

// NewRedisClient builds the shared redis client used by the cache and the
// redis event sink.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
