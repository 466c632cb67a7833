// Package redis provides a fixed-window rate limiter shared across
// server instances.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const window = time.Minute

// Limiter counts requests per key in one-minute windows.
type Limiter struct {
	client *goredis.Client
	prefix string
}

// Options configure the redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// NewLimiter connects to redis and checks the connection with PING.
func NewLimiter(ctx context.Context, opts Options) (*Limiter, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = "clearcare:ratelimit"
	}

	return &Limiter{client: client, prefix: prefix}, nil
}

// Allow increments the counter for key and reports whether it is still
// within maxPerMinute. INCR, EXPIRE NX and TTL run in one MULTI/EXEC, so a
// counter can never be left without an expiry: any hit on a key that lost
// its TTL puts a fresh one back.
func (l *Limiter) Allow(ctx context.Context, key string, maxPerMinute int) (bool, time.Duration, error) {
	redisKey := l.prefix + ":" + key

	var (
		incr *goredis.IntCmd
		ttl  *goredis.DurationCmd
	)
	_, err := l.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.ExpireNX(ctx, redisKey, window)
		ttl = pipe.TTL(ctx, redisKey)
		return nil
	})
	if err != nil {
		return false, 0, fmt.Errorf("redis rate limit %s: %w", key, err)
	}

	if incr.Val() <= int64(maxPerMinute) {
		return true, 0, nil
	}

	retryAfter := ttl.Val()
	if retryAfter <= 0 || retryAfter > window {
		retryAfter = window
	}
	return false, retryAfter, nil
}

// Ping reports whether Redis is reachable; used by the health endpoints.
func (l *Limiter) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (l *Limiter) Close() error {
	return l.client.Close()
}
