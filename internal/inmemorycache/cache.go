package inmemorycache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is a string-keyed byte store with per-entry TTL. Expired entries read as misses.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

type InMemoryCache struct {
	store *gocache.Cache
}

func NewInMemoryCacheProvider(cleanupInterval time.Duration) *InMemoryCache {
	return &InMemoryCache{
		store: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

func (m *InMemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, exists := m.store.Get(key)
	if !exists {
		return nil, false, nil
	}

	data, ok := value.([]byte)
	if !ok {
		m.store.Delete(key)
		return nil, false, nil
	}

	return data, true, nil
}

func (m *InMemoryCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	entry := make([]byte, len(data))
	copy(entry, data)

	m.store.Set(key, entry, ttl)

	return nil
}

func (m *InMemoryCache) ItemCount() int {
	return m.store.ItemCount()
}
