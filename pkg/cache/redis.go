// Package cache provides the shared key-value store used for per-feed
// and per-digest caching, plus a bounded in-process fallback map for
// when the store is unavailable.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	redis "github.com/redis/go-redis/v9"
)

// Redis is a thin client over the shared Redis store. Values are opaque
// byte blobs, callers own the encoding. Transient failures are retried
// with a short backoff before being reported.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to the store at the given URL and verifies it with
// a ping. The returned client is safe for concurrent use.
func NewRedis(redisURL string) (*Redis, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Redis{client: client}, nil
}

// Close releases the underlying connection pool
func (r *Redis) Close() error { return r.client.Close() }

// Get returns the value for key, with found=false on a clean miss
func (r *Redis) Get(ctx context.Context, key string) (value []byte, found bool, err error) {
	retrier := repeater.NewBackoff(3, 50*time.Millisecond, repeater.WithMaxDelay(time.Second))

	err = retrier.Do(ctx, func() error {
		data, getErr := r.client.Get(ctx, key).Bytes()
		if getErr != nil {
			if errors.Is(getErr, redis.Nil) {
				value, found = nil, false
				return nil
			}
			return getErr // retry
		}
		value, found = data, true
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("cache get %s: %w", key, err)
	}
	return value, found, nil
}

// Set stores value under key with the given TTL
func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	retrier := repeater.NewBackoff(3, 50*time.Millisecond, repeater.WithMaxDelay(time.Second))

	err := retrier.Do(ctx, func() error {
		return r.client.Set(ctx, key, value, ttl).Err()
	})
	if err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}
