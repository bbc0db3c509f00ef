package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryCacheRepository - in-memory запасной вариант кеша на случай,
// когда Redis не сконфигурирован. Значения вытесняются только по TTL
// при чтении; для сессионных данных с коротким TTL этого достаточно.
type MemoryCacheRepository struct {
	mu    sync.RWMutex
	items map[string]memoryCacheItem
}

type memoryCacheItem struct {
	value     string
	expiresAt time.Time
}

func NewMemoryCacheRepository() CacheRepositoryInterface {
	return &MemoryCacheRepository{items: make(map[string]memoryCacheItem)}
}

func (r *MemoryCacheRepository) Get(_ context.Context, key string) (string, error) {
	r.mu.RLock()
	item, ok := r.items[key]
	r.mu.RUnlock()

	if !ok {
		return "", ErrCacheMiss
	}
	if !item.expiresAt.IsZero() && time.Now().After(item.expiresAt) {
		r.mu.Lock()
		delete(r.items, key)
		r.mu.Unlock()
		return "", ErrCacheMiss
	}
	return item.value, nil
}

func (r *MemoryCacheRepository) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		s = fmt.Sprintf("%v", v)
	}

	var expiresAt time.Time
	if expiration > 0 {
		expiresAt = time.Now().Add(expiration)
	}

	r.mu.Lock()
	r.items[key] = memoryCacheItem{value: s, expiresAt: expiresAt}
	r.mu.Unlock()
	return nil
}

func (r *MemoryCacheRepository) Del(_ context.Context, keys ...string) error {
	r.mu.Lock()
	for _, key := range keys {
		delete(r.items, key)
	}
	r.mu.Unlock()
	return nil
}
