// Package carts provides key-value slot backends for cart snapshots.
package carts

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSlot stores cart snapshots in Redis with a TTL. Abandoned carts
// age out on their own; every operation carries the caller's context so
// the short per-op timeout set by the cart store applies here too.
type RedisSlot struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisSlot reads its knobs from the environment:
//
//	CART_SLOT_PREFIX   key prefix (default "shelfmart:")
//	CART_SLOT_TTL_SEC  snapshot TTL in seconds (default 30 days)
func NewRedisSlot(rdb *redis.Client) *RedisSlot {
	prefix := os.Getenv("CART_SLOT_PREFIX")
	if prefix == "" {
		prefix = "shelfmart:"
	}
	ttl := 30 * 24 * time.Hour
	if v := os.Getenv("CART_SLOT_TTL_SEC"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}
	return &RedisSlot{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (s *RedisSlot) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return b, err
}

func (s *RedisSlot) Set(ctx context.Context, key string, value []byte) error {
	return s.rdb.Set(ctx, s.prefix+key, value, s.ttl).Err()
}

func (s *RedisSlot) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, s.prefix+key).Err()
}
