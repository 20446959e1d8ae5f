// Package mock provides in-memory test doubles for integration tests.
package mock

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/study-cards/backend/internal/application/adapter"
)

// Storage is an in-memory adapter.StorageService. When a redis client is
// provided it mirrors the production URL caching behavior so the cache
// path gets exercised in integration tests.
type Storage struct {
	mu       sync.Mutex
	objects  map[string][]byte
	cache    *redis.Client
	cacheTTL time.Duration
}

// NewStorage creates a new in-memory storage service. cache may be nil.
func NewStorage(cache *redis.Client, cacheTTL time.Duration) *Storage {
	return &Storage{
		objects:  make(map[string][]byte),
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Put stores the object body in memory.
func (s *Storage) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	body, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = body
	return nil
}

// PresignedURL returns a deterministic fake URL for stored objects.
func (s *Storage) PresignedURL(ctx context.Context, key string) (string, error) {
	cacheKey := "presign:" + key

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			return cached, nil
		}
	}

	s.mu.Lock()
	_, exists := s.objects[key]
	s.mu.Unlock()
	if !exists {
		return "", fmt.Errorf("object not found: %s", key)
	}

	url := "https://storage.test/" + key + "?signature=fake"

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, url, s.cacheTTL).Err(); err != nil {
			return "", err
		}
	}

	return url, nil
}

// List returns the stored keys under the given prefix.
func (s *Storage) List(ctx context.Context, prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := []string{}
	for key := range s.objects {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// Remove deletes the object and its cached URL.
func (s *Storage) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()

	if s.cache != nil {
		_ = s.cache.Del(ctx, "presign:"+key).Err()
	}
	return nil
}

var _ adapter.StorageService = (*Storage)(nil)
