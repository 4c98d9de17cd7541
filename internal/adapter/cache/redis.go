package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/MikeRez0/automarket/internal/adapter/config"
	"github.com/redis/go-redis/v9"
)

// Cache is a small TTL key-value store. The gateway adapter keeps its
// pending payment attempts here.
type Cache interface {
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	GenerateKey(operation, key string) string
}

const serviceName = "automarket"

type redisCache struct {
	client *redis.Client
}

func NewRedisCache(conf *config.Redis) Cache {
	return &redisCache{
		client: redis.NewClient(&redis.Options{Addr: conf.Addr}),
	}
}

func (r *redisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}

	if err != nil {
		return "", err
	}

	return value, nil
}

func (r *redisCache) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *redisCache) GenerateKey(operation, key string) string {
	return fmt.Sprintf("%s:%s:%s", serviceName, operation, key)
}
