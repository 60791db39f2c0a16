package kvstore

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

func NewMemory() Provider {
	return &memoryImpl{
		cache: cache.New(cache.NoExpiration, 10*time.Minute),
	}
}

type memoryImpl struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func expiration(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return cache.NoExpiration
	}
	return ttl
}

func (i *memoryImpl) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	i.cache.Set(key, stored, expiration(ttl))
	return nil
}

func (i *memoryImpl) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, found := i.cache.Get(key)
	if !found {
		return nil, false, nil
	}
	stored := value.([]byte)
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, true, nil
}

func (i *memoryImpl) Delete(_ context.Context, key string) error {
	i.cache.Delete(key)
	return nil
}

func (i *memoryImpl) Incr(_ context.Context, key string, ttl time.Duration) (int64, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if _, found := i.cache.Get(key); !found {
		i.cache.Set(key, int64(1), expiration(ttl))
		return 1, nil
	}
	return i.cache.IncrementInt64(key, 1)
}
