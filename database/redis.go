package database

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	config "github.com/polyglotlc/backend/configs"
)

// RDB is nil when Redis is not configured; every caller must treat the
// cache as optional.
var RDB *redis.Client

func ConnectRedis() {
	redisAddr := config.Config("REDIS_ADDR")
	if redisAddr == "" {
		log.Println("⚠️ REDIS_ADDR not set, caching disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: config.Config("REDIS_PASSWORD"),
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Printf("⚠️ Failed to connect to Redis, caching disabled: %v", err)
		return
	}

	RDB = client
	log.Println("✅ Redis connected successfully")
}
