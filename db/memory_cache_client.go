package db

import (
	"context"
	"log"
	"path"
	"sort"
	"sync"
	"time"
)

// SWEEP_INTERVAL bounds how often Set scans for expired entries.
const SWEEP_INTERVAL = time.Minute

// MemoryCacheClient keeps entries in process memory. Expired entries are
// dropped on read and swept from the whole map by Set.
type MemoryCacheClient struct {
	data    map[string]memoryEntry
	mu      sync.RWMutex
	context context.Context
	now     func() time.Time

	lastSweep time.Time

	hits   int
	misses int
}

type memoryEntry struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// NewMemoryCacheClient initializes a new MemoryCacheClient.
func NewMemoryCacheClient(ctx context.Context) *MemoryCacheClient {
	return NewMemoryCacheClientWithClock(ctx, time.Now)
}

// NewMemoryCacheClientWithClock lets tests control expiry.
func NewMemoryCacheClientWithClock(ctx context.Context, now func() time.Time) *MemoryCacheClient {
	return &MemoryCacheClient{
		data:    make(map[string]memoryEntry),
		context: ctx,
		now:     now,
	}
}

func (m *MemoryCacheClient) Set(key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	if now.Sub(m.lastSweep) >= SWEEP_INTERVAL {
		m.sweep(now)
	}
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = now.Add(ttl)
	}
	m.data[key] = entry
	return nil
}

// sweep deletes every expired entry. Callers hold the write lock.
func (m *MemoryCacheClient) sweep(now time.Time) {
	for k, entry := range m.data {
		if entry.expired(now) {
			delete(m.data, k)
		}
	}
	m.lastSweep = now
}

// Len is the number of stored entries, including expired ones not yet swept.
func (m *MemoryCacheClient) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

func (m *MemoryCacheClient) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, exists := m.data[key]
	if exists && entry.expired(m.now()) {
		delete(m.data, key)
		exists = false
	}
	if !exists {
		m.misses++
		return "", ErrCacheMiss
	}
	m.hits++
	return entry.value, nil
}

func (m *MemoryCacheClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Keys matches live keys against a glob pattern, like Redis KEYS.
func (m *MemoryCacheClient) Keys(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	now := m.now()
	var keys []string
	for k, entry := range m.data {
		if entry.expired(now) {
			continue
		}
		ok, err := path.Match(pattern, k)
		if err != nil {
			return nil, err
		}
		if ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemoryCacheClient) GetContext() context.Context {
	return m.context
}

func (m *MemoryCacheClient) Ping() error {
	log.Println("[MemoryCacheClient] Using in-process cache")
	return nil
}

func (m *MemoryCacheClient) Close() error {
	return nil
}

// Stats returns cache hits and misses counted by Get.
func (m *MemoryCacheClient) Stats() (hits, misses int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hits, m.misses
}

var _ CacheClient = (*MemoryCacheClient)(nil)
