package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SlotCache keeps available-slot responses in Redis. The availability
// endpoint is unauthenticated and read-heavy (the booking UI polls it),
// so a short TTL plus write-side invalidation takes most of the load off
// the appointments table. A nil *SlotCache is valid and always misses,
// which is how deployments without Redis run.
type SlotCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewSlotCache(rdb *redis.Client, ttl time.Duration, log *zap.Logger) *SlotCache {
	return &SlotCache{
		rdb: rdb,
		ttl: ttl,
		log: log.With(zap.String("cache", "slots")),
	}
}

func slotKey(date, serviceType string) string {
	return "slots:" + date + ":" + serviceType
}

// Get returns the cached slot list, or ok=false on a miss. Redis errors
// count as misses: the cache must never break availability reads.
func (c *SlotCache) Get(ctx context.Context, date, serviceType string) ([]string, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.rdb.Get(ctx, slotKey(date, serviceType)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("Slot cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal(data, &slots); err != nil {
		c.log.Warn("Slot cache entry corrupt", zap.Error(err))
		return nil, false
	}

	return slots, true
}

func (c *SlotCache) Set(ctx context.Context, date, serviceType string, slots []string) {
	if c == nil {
		return
	}

	data, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, slotKey(date, serviceType), data, c.ttl).Err(); err != nil {
		c.log.Warn("Slot cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached entry after a booking or cancellation
// changes availability for the key.
func (c *SlotCache) Invalidate(ctx context.Context, date, serviceType string) {
	if c == nil {
		return
	}

	if err := c.rdb.Del(ctx, slotKey(date, serviceType)).Err(); err != nil {
		c.log.Warn("Slot cache invalidation failed", zap.Error(err))
	}
}
