package limiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_Counts(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := int64(1); i <= 5; i++ {
		count, err := store.Incr(ctx, "key", time.Minute)
		assert.NoError(t, err)
		assert.Equal(t, i, count)
	}
}

func TestMemoryStore_IndependentKeys(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	count, err := store.Incr(ctx, "a", time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = store.Incr(ctx, "b", time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryStore_WindowReset(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	count, err := store.Incr(ctx, "key", 20*time.Millisecond)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = store.Incr(ctx, "key", 20*time.Millisecond)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	time.Sleep(30 * time.Millisecond)

	count, err = store.Incr(ctx, "key", 20*time.Millisecond)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryStore_DropsExpiredEntries(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Incr(ctx, "stale", 5*time.Millisecond)
	assert.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	for i := 0; i < sweepEvery; i++ {
		_, err := store.Incr(ctx, "fresh", time.Minute)
		assert.NoError(t, err)
	}

	store.mu.Lock()
	_, stale := store.entries["stale"]
	_, fresh := store.entries["fresh"]
	store.mu.Unlock()
	assert.False(t, stale, "expired counter should have been swept")
	assert.True(t, fresh)
}
