package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisCacheClient struct holds the Redis client and context
type RedisCacheClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisCacheClient wraps an already configured go-redis client.
func NewRedisCacheClient(ctx context.Context, client *redis.Client) *RedisCacheClient {
	return &RedisCacheClient{
		client: client,
		ctx:    ctx,
	}
}

// Set stores value under key; Redis expires it after ttl.
func (r *RedisCacheClient) Set(key, value string, ttl time.Duration) error {
	return r.client.Set(r.ctx, key, value, ttl).Err()
}

// Get retrieves the value for a given key from Redis
func (r *RedisCacheClient) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	return val, nil
}

func (r *RedisCacheClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

// SCAN_BATCH_SIZE is the COUNT hint passed to each SCAN call.
const SCAN_BATCH_SIZE = 100

// Keys walks the keyspace with SCAN so a large cache never blocks Redis
// the way KEYS would.
func (r *RedisCacheClient) Keys(pattern string) ([]string, error) {
	var keys []string
	iter := r.client.Scan(r.ctx, 0, pattern, SCAN_BATCH_SIZE).Iterator()
	for iter.Next(r.ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", pattern, err)
	}
	return keys, nil
}

func (r *RedisCacheClient) GetContext() context.Context {
	return r.ctx
}

func (r *RedisCacheClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	if err == nil {
		log.Println("[RedisCacheClient] Connected to Redis")
	}
	return err
}

func (r *RedisCacheClient) Close() error {
	return r.client.Close()
}

var _ CacheClient = (*RedisCacheClient)(nil)
