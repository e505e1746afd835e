package db

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// CacheClient defines the key-value operations the weather cache needs.
// Values expire after their ttl; a zero ttl keeps them forever.
type CacheClient interface {
	Set(key, value string, ttl time.Duration) error
	Get(key string) (string, error)
	Del(key string) error
	Keys(pattern string) ([]string, error)
	GetContext() context.Context
	Ping() error
	Close() error
}
