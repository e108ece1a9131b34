package middlewares

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shelfmart/storefront-api/internal/api/apperr"
)

type KeyFunc func(r *http.Request) string

// PerIPKey buckets callers by client IP.
func PerIPKey(prefix string) KeyFunc {
	return func(r *http.Request) string {
		ip := clientIP(r)
		if ip == "" {
			ip = "unknown"
		}
		return prefix + ":" + ip
	}
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// first entry is the client, the rest are proxies
		return strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// RedisSlidingWindow limits each key to limit requests per window using
// a Redis ZSET of timestamps. With no Redis client configured, or when
// Redis errors, requests pass through: rate limiting is protection, not
// a dependency.
type RedisSlidingWindow struct {
	rdb    *redis.Client
	keyFn  KeyFunc
	limit  int
	window time.Duration
}

func NewRedisSlidingWindow(rdb *redis.Client, limit int, window time.Duration, keyFn KeyFunc) *RedisSlidingWindow {
	return &RedisSlidingWindow{rdb: rdb, keyFn: keyFn, limit: limit, window: window}
}

func (sw *RedisSlidingWindow) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sw.rdb == nil {
			next.ServeHTTP(w, r)
			return
		}
		ctx := r.Context()
		now := time.Now().UnixMilli()
		key := sw.keyFn(r)

		pipe := sw.rdb.TxPipeline()
		member := strconv.FormatInt(now, 10) + ":" + randomSuffix()
		pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: member})
		pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(now-sw.window.Milliseconds(), 10))
		countCmd := pipe.ZCard(ctx, key)
		pipe.PExpire(ctx, key, sw.window+time.Second)
		if _, err := pipe.Exec(ctx); err != nil {
			log.Printf("[ratelimit] redis error: %v (allowing request)", err)
			next.ServeHTTP(w, r)
			return
		}
		count := int(countCmd.Val())

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(sw.limit))
		remaining := sw.limit - count
		if remaining < 0 {
			remaining = 0
		}
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if count > sw.limit {
			w.Header().Set("Retry-After", strconv.Itoa(int(sw.window.Seconds())))
			apperr.WriteStatus(w, r, http.StatusTooManyRequests, "Too Many Requests", "")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// LoginRateLimit caps credential attempts per IP with a plain counter.
// Fail-open on missing Redis, same as the sliding window.
func LoginRateLimit(rdb *redis.Client, next http.Handler) http.Handler {
	max := envInt("LOGIN_MAX_ATTEMPTS", 10)
	win := envDur("LOGIN_WINDOW", 5*time.Minute)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if rdb == nil || ip == "" {
			next.ServeHTTP(w, r)
			return
		}
		ctx := r.Context()
		key := "rl:login:" + ip
		n, err := rdb.Incr(ctx, key).Result()
		if err == nil && n == 1 {
			_ = rdb.Expire(ctx, key, win).Err()
		}
		if err == nil && n > int64(max) {
			w.Header().Set("Retry-After", strconv.Itoa(int(win.Seconds())))
			apperr.WriteStatus(w, r, http.StatusTooManyRequests, "Too Many Attempts",
				"Retry after the login window resets.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func randomSuffix() string {
	var b [4]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

func envInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
