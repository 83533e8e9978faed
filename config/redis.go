package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RDB is the shared redis client. It stays nil when REDIS_ADDR is not set,
// in which case rate limiting is a no-op.
var RDB *redis.Client

func InitRedis() {
	if App.RedisAddr == "" {
		log.Println("Redis not configured, login rate limiting disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     App.RedisAddr,
		Password: App.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: Redis unreachable, rate limiting disabled: %v", err)
		return
	}

	RDB = client
	log.Println("Redis connected successfully")
}
