package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sops/internal/models"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key is absent from the cache.
var ErrCacheMiss = errors.New("cache miss")

// CacheService wraps Redis with JSON marshaling and a default TTL.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCacheService creates a CacheService with the given default TTL.
func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Set stores a value under key with the default TTL.
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

// SetWithTTL stores a JSON-marshaled value under key.
func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

// Get unmarshals the value stored under key into dest.
// The bool result reports whether the key was present.
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

// Delete removes the given keys.
func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// GenerateKey builds a cache key of the form entity:keyType:value.
func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// CacheUser stores a user under its id and email keys.
func (s *CacheService) CacheUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return errors.New("cannot cache nil user")
	}

	keys := []string{
		s.GenerateKey("user", "id", user.ID),
		s.GenerateKey("user", "email", user.Email),
	}
	for _, key := range keys {
		if err := s.Set(ctx, key, user); err != nil {
			return err
		}
	}
	return nil
}

// GetUser fetches a cached user by key.
func (s *CacheService) GetUser(ctx context.Context, key string) (*models.User, error) {
	var user models.User
	found, err := s.Get(ctx, key, &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrCacheMiss
	}
	return &user, nil
}

// InvalidateUser drops all cache entries for a user.
func (s *CacheService) InvalidateUser(ctx context.Context, user *models.User) error {
	return s.Delete(ctx,
		s.GenerateKey("user", "id", user.ID),
		s.GenerateKey("user", "email", user.Email),
	)
}

// CacheTransaction stores a transaction under its id key.
func (s *CacheService) CacheTransaction(ctx context.Context, tx *models.Transaction) error {
	if tx == nil {
		return errors.New("cannot cache nil transaction")
	}
	return s.Set(ctx, s.GenerateKey("transaction", "id", tx.ID), tx)
}

// GetTransaction fetches a cached transaction by id.
func (s *CacheService) GetTransaction(ctx context.Context, id uint) (*models.Transaction, error) {
	var tx models.Transaction
	found, err := s.Get(ctx, s.GenerateKey("transaction", "id", id), &tx)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrCacheMiss
	}
	return &tx, nil
}

// InvalidateTransaction drops the cache entry for a transaction id.
func (s *CacheService) InvalidateTransaction(ctx context.Context, id uint) error {
	return s.Delete(ctx, s.GenerateKey("transaction", "id", id))
}

// FlushAll clears the whole cache. Used on startup.
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// HealthCheck pings Redis.
func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

// Close closes the underlying Redis client.
func (s *CacheService) Close() error {
	return s.client.Close()
}
