// Package limiter provides the fixed-window counter behind the
// request rate limiting middleware. Counters live in redis so the
// quota is shared across instances; the memory store covers tests and
// single-process deployments without redis.
package limiter

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store counts hits per key within a fixed window. Incr returns the
// number of hits recorded for the key in the current window,
// including this one.
type Store interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}

	// First hit opens the window.
	if count == 1 {
		s.client.Expire(ctx, key, window)
	}

	return count, nil
}

// sweepEvery is how many increments pass between scans that drop
// expired counters, so the map does not grow with every distinct
// client ever seen.
const sweepEvery = 64

type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*entry
	ops     int
}

type entry struct {
	count   int64
	resetAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*entry)}
}

func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	s.ops++
	if s.ops%sweepEvery == 0 {
		for k, e := range s.entries {
			if now.After(e.resetAt) {
				delete(s.entries, k)
			}
		}
	}

	e, ok := s.entries[key]
	if !ok || now.After(e.resetAt) {
		e = &entry{resetAt: now.Add(window)}
		s.entries[key] = e
	}

	e.count++
	return e.count, nil
}
