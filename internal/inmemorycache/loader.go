package inmemorycache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// Loader memoizes producer results in a Cache. Concurrent misses on one key share a single
// producer call. Failed producer calls are never stored.
type Loader struct {
	cache Cache
	group singleflight.Group
}

func NewLoader(cache Cache) *Loader {
	return &Loader{cache: cache}
}

func GetOrFetch[T any](ctx context.Context, l *Loader, key string, ttl time.Duration, producer func(context.Context) (T, error)) (T, error) {
	if cached, ok := lookup[T](ctx, l.cache, key); ok {
		return cached, nil
	}

	value, err, _ := l.group.Do(key, func() (interface{}, error) {
		// another caller may have filled the entry while we waited for the group
		if cached, ok := lookup[T](ctx, l.cache, key); ok {
			return cached, nil
		}

		fresh, err := producer(ctx)
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(fresh)
		if err != nil {
			return nil, fmt.Errorf("failed to encode cache entry %s: %w", key, err)
		}

		if err := l.cache.Set(ctx, key, data, ttl); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to store cache entry")
		}

		return fresh, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return value.(T), nil
}

func lookup[T any](ctx context.Context, cache Cache, key string) (T, bool) {
	var value T

	data, exists, err := cache.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed, treating as miss")
		return value, false
	}
	if !exists {
		return value, false
	}

	if err := json.Unmarshal(data, &value); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache entry is not decodable, treating as miss")
		var zero T
		return zero, false
	}

	return value, true
}
