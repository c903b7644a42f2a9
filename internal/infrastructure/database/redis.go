package database

import (
	"github.com/redis/go-redis/v9"
)

// NewRedis creates the shared Redis client used for session storage.
func NewRedis(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
