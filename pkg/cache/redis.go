package cache

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to redis using REDIS_ADDR / REDIS_PASSWORD.
// Returns nil, nil when REDIS_ADDR is unset: caching is optional.
func InitRedis() (*redis.Client, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return client, nil
}
