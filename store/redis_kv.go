package store

import (
	"context"

	"github.com/go-redis/redis/v8"
)

type redisBackend struct {
	client *redis.Client
}

// NewRedisBackend stores blobs in Redis. Keys live forever; the adapter
// layer owns their lifecycle.
func NewRedisBackend(client *redis.Client) Backend {
	return &redisBackend{client: client}
}

func (b *redisBackend) Get(key string) ([]byte, error) {
	return b.client.Get(context.Background(), key).Bytes()
}

func (b *redisBackend) Put(key string, value []byte) error {
	return b.client.Set(context.Background(), key, value, 0).Err()
}

func (b *redisBackend) Del(key string) error {
	return b.client.Del(context.Background(), key).Err()
}
