package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// InitRedis connects to addr (host:port) and pings it. On failure
// RedisClient stays nil and callers fall back to in-process state.
func InitRedis(addr string) error {
	c := redis.NewClient(&redis.Options{
		Addr:     addr, // e.g. localhost:6379
		Password: "",
		DB:       0,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return err
	}
	RedisClient = c
	return nil
}

func CloseRedis() error {
	if RedisClient == nil {
		return nil
	}
	return RedisClient.Close()
}
