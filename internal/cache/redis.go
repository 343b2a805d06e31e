package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisEntryTTL bounds how long an exported schedule stays retrievable.
const redisEntryTTL = time.Hour

// Redis is a Cache implementation backed by a redis server, for deployments
// running more than one instance of the calculator behind a load balancer.
type Redis struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedis creates a cache talking to the redis server at addr.
func NewRedis(addr string) *Redis {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &Redis{
		client: rdb,
		ctx:    context.Background(),
	}
}

// Get returns the value stored under key, if any.
func (r *Redis) Get(key string) (string, bool) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores value under key with the standard TTL.
func (r *Redis) Set(key string, value string) error {
	return r.client.Set(r.ctx, key, value, redisEntryTTL).Err()
}
