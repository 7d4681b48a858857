package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shiningstar/learninglens/internal/config"
)

// ErrCacheMiss is returned when the requested key is not found in cache
var ErrCacheMiss = errors.New("cache: key not found")

// Key prefixes for namespacing redis keys
const (
	PrefixAnalysis  = "analysis:"
	PrefixRefresh   = "refresh:"
	PrefixRateLimit = "ratelimit:"
)

// RedisClient wraps the go-redis client used for caching and rate limiting
type RedisClient struct {
	Client *redis.Client
}

// NewRedisClient creates a new redis client and verifies the connection
func NewRedisClient(cfg *config.Config) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to establish redis connection: %w", err)
	}

	return &RedisClient{Client: client}, nil
}

// Close closes the redis connection
func (r *RedisClient) Close() error {
	if r.Client != nil {
		return r.Client.Close()
	}
	return nil
}

// SetJSON serializes a value to JSON and stores it with the given TTL
func (r *RedisClient) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize cache value: %w", err)
	}
	return r.Client.Set(ctx, key, data, ttl).Err()
}

// GetJSON retrieves a JSON value by key and deserializes it into dest.
// Returns ErrCacheMiss when the key does not exist.
func (r *RedisClient) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := r.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

// SetString stores a string value with the given TTL
func (r *RedisClient) SetString(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.Client.Set(ctx, key, value, ttl).Err()
}

// GetString retrieves a string value by key.
// Returns ErrCacheMiss when the key does not exist.
func (r *RedisClient) GetString(ctx context.Context, key string) (string, error) {
	val, err := r.Client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", err
	}
	return val, nil
}

// Delete removes keys from the cache
func (r *RedisClient) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.Client.Del(ctx, keys...).Err()
}

// IncrWithWindow increments a counter and starts its expiry window on first use.
// Returns the counter value after the increment.
func (r *RedisClient) IncrWithWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := r.Client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := r.Client.Expire(ctx, key, window).Err(); err != nil {
			return count, err
		}
	}
	return count, nil
}
