package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const defaultRedisTimeout = 2 * time.Second

// RedisStore keeps values in a Redis server
type RedisStore struct {
	client  *redis.Client
	timeout time.Duration
}

// OpenRedis connects to the Redis server described by cfg and pings it
func OpenRedis(cfg Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	store := NewRedisStore(client, cfg.Timeout)

	ctx, cancel := store.context()
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}

	return store, nil
}

// NewRedisStore wraps an existing client. A zero timeout uses the default.
func NewRedisStore(client *redis.Client, timeout time.Duration) *RedisStore {
	if timeout <= 0 {
		timeout = defaultRedisTimeout
	}
	return &RedisStore{client: client, timeout: timeout}
}

func (s *RedisStore) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

// Get reads the value stored under key
func (s *RedisStore) Get(key string) (string, bool, error) {
	ctx, cancel := s.context()
	defer cancel()

	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set replaces the value under key without expiry
func (s *RedisStore) Set(key, value string) error {
	ctx, cancel := s.context()
	defer cancel()
	return s.client.Set(ctx, key, value, 0).Err()
}

// Close closes the client connection pool
func (s *RedisStore) Close() error {
	return s.client.Close()
}
