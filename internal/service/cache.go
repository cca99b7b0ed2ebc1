package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dangerclosesec/structura/internal/cache"
	"github.com/dangerclosesec/structura/internal/domain"
)

// CacheService provides caching functionality with type safety and error handling
type CacheService struct {
	cache *cache.InMemoryCache
}

// CacheConfig holds configuration for the cache service
type CacheConfig struct {
	TTL  time.Duration
	Size int
}

// NewCacheService creates a new cache service
func NewCacheService(config CacheConfig) *CacheService {
	return &CacheService{
		cache: cache.NewInMemoryCache(config.Size, config.TTL),
	}
}

// Set stores a value in the cache
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	s.cache.Set(ctx, key, value)
	return nil
}

// Get retrieves a value from the cache into result
func (s *CacheService) Get(ctx context.Context, key string, result interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	value, found := s.cache.Get(ctx, key)
	if !found {
		return domain.ErrNotFound
	}

	if err := assignValue(value, result); err != nil {
		return fmt.Errorf("assigning cached value: %w", err)
	}
	return nil
}

// GetOrSet retrieves a value from cache or sets it if not found
func (s *CacheService) GetOrSet(ctx context.Context, key string, result interface{}, fetchFunc func() (interface{}, error)) error {
	err := s.Get(ctx, key, result)
	if err == nil {
		return nil
	}

	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("getting from cache: %w", err)
	}

	// Domain errors from fetchFunc pass through unwrapped so callers can match them
	value, err := fetchFunc()
	if err != nil {
		return err
	}

	if err := s.Set(ctx, key, value); err != nil {
		return fmt.Errorf("storing in cache: %w", err)
	}

	if err := assignValue(value, result); err != nil {
		return fmt.Errorf("assigning fetched value: %w", err)
	}

	return nil
}

// Delete removes a value from the cache
func (s *CacheService) Delete(ctx context.Context, key string) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	s.cache.Delete(ctx, key)
	return nil
}

// DeletePrefix removes every value whose key starts with prefix
func (s *CacheService) DeletePrefix(ctx context.Context, prefix string) {
	s.cache.DeletePrefix(ctx, prefix)
}

// Close drops every cached value
func (s *CacheService) Close() {
	s.cache.Purge()
}

// assignValue handles type conversion for different types
func assignValue(src interface{}, dst interface{}) error {
	if v, ok := dst.(*interface{}); ok {
		*v = src
		return nil
	}

	// Convert to JSON and back for complex types
	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("marshaling value: %w", err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("unmarshaling value: %w", err)
	}

	return nil
}
