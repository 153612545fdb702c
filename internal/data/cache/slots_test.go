package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCache(t *testing.T) (*SlotCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewSlotCache(rdb, 5*time.Minute, zap.NewNop()), mr
}

func TestSlotCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss on empty cache", func(t *testing.T) {
		c, _ := newTestCache(t)

		_, ok := c.Get(ctx, "2025-07-01", "Hair Grooming")
		assert.False(t, ok)
	})

	t.Run("set then get", func(t *testing.T) {
		c, _ := newTestCache(t)

		slots := []string{"09:00", "11:00", "14:00"}
		c.Set(ctx, "2025-07-01", "Hair Grooming", slots)

		got, ok := c.Get(ctx, "2025-07-01", "Hair Grooming")
		require.True(t, ok)
		assert.Equal(t, slots, got)
	})

	t.Run("keys are scoped by date and service", func(t *testing.T) {
		c, _ := newTestCache(t)

		c.Set(ctx, "2025-07-01", "Hair Grooming", []string{"09:00"})

		_, ok := c.Get(ctx, "2025-07-02", "Hair Grooming")
		assert.False(t, ok)
		_, ok = c.Get(ctx, "2025-07-01", "Nail Trimming")
		assert.False(t, ok)
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		c, _ := newTestCache(t)

		c.Set(ctx, "2025-07-01", "Hair Grooming", []string{"09:00"})
		c.Invalidate(ctx, "2025-07-01", "Hair Grooming")

		_, ok := c.Get(ctx, "2025-07-01", "Hair Grooming")
		assert.False(t, ok)
	})

	t.Run("entries expire with the TTL", func(t *testing.T) {
		c, mr := newTestCache(t)

		c.Set(ctx, "2025-07-01", "Hair Grooming", []string{"09:00"})
		mr.FastForward(6 * time.Minute)

		_, ok := c.Get(ctx, "2025-07-01", "Hair Grooming")
		assert.False(t, ok)
	})

	t.Run("corrupt entry is a miss", func(t *testing.T) {
		c, mr := newTestCache(t)

		require.NoError(t, mr.Set("slots:2025-07-01:Hair Grooming", "{not json"))

		_, ok := c.Get(ctx, "2025-07-01", "Hair Grooming")
		assert.False(t, ok)
	})

	t.Run("nil cache always misses", func(t *testing.T) {
		var c *SlotCache

		c.Set(ctx, "2025-07-01", "Hair Grooming", []string{"09:00"})
		_, ok := c.Get(ctx, "2025-07-01", "Hair Grooming")
		assert.False(t, ok)
		c.Invalidate(ctx, "2025-07-01", "Hair Grooming")
	})
}
