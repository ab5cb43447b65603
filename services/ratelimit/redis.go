package ratelimitsvc

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"

	"github.com/getgradient/gradient/core"
)

// Limiter throttles sensitive operations (login, password reset requests) per
// key. Allow reports whether the attempt may proceed and records it.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}

type redisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	prefix string
}

var _ Limiter = (*redisLimiter)(nil)

// NewRedisLimiter returns a fixed-window limiter backed by Redis. Counters
// share state across instances, so the limit holds fleet-wide.
func NewRedisLimiter(client *redis.Client, conf *core.Config) Limiter {
	return &redisLimiter{
		client: client,
		limit:  conf.LoginAttemptLimit,
		window: conf.LoginAttemptWindow,
		prefix: core.CleanString(conf.AppName, true) + ":ratelimit:",
	}
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.prefix + key
	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, errors.Wrap(err, "incrementing rate limit counter")
	}
	if n == 1 {
		// first hit opens the window
		if err = l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, errors.Wrap(err, "setting rate limit window")
		}
	}
	return n <= int64(l.limit), nil
}

func (l *redisLimiter) Reset(ctx context.Context, key string) error {
	return errors.Wrap(l.client.Del(ctx, l.prefix+key).Err(), "resetting rate limit counter")
}

type memEntry struct {
	count   int
	resetAt time.Time
}

type memLimiter struct {
	mu      sync.Mutex
	entries map[string]*memEntry
	limit   int
	window  time.Duration
	nowFunc func() time.Time
}

var _ Limiter = (*memLimiter)(nil)

// NewMemLimiter returns an in-process fixed-window limiter, used when no
// Redis address is configured and in tests.
func NewMemLimiter(conf *core.Config) Limiter {
	return &memLimiter{
		entries: make(map[string]*memEntry),
		limit:   conf.LoginAttemptLimit,
		window:  conf.LoginAttemptWindow,
		nowFunc: time.Now,
	}
}

func (l *memLimiter) Allow(ctx context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.nowFunc()
	e, ok := l.entries[key]
	if !ok || now.After(e.resetAt) {
		l.entries[key] = &memEntry{count: 1, resetAt: now.Add(l.window)}
		return true, nil
	}
	e.count++
	return e.count <= l.limit, nil
}

func (l *memLimiter) Reset(ctx context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, key)
	return nil
}
