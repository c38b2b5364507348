package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client
var Ctx = context.Background()

// InitRedis connects the shared redis client used for leaderboard caching.
func InitRedis(addr string, db int) error {
	RDB = redis.NewClient(&redis.Options{
		Addr:     addr,
		DB:       db,
		PoolSize: 100,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RDB.Ping(ctx).Result()
	return err
}
