package database

import (
	"context"
	"fmt"
	"time"

	"pet-grooming/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to Redis for the availability-slot cache. The cache
// is optional: callers skip this entirely when no address is configured.
func InitRedis(config utils.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis failed: %w", err)
	}

	return client, nil
}
