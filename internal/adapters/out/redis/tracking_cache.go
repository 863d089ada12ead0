// Package redis caches public tracking responses in Redis, keyed by barcode.
// Entries expire after a configured TTL and are invalidated whenever a
// command changes the underlying order or delivery.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const trackingKeyPrefix = "tracking:"

// Config holds the Redis connection and cache settings.
type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// TrackingCache implements ports.TrackingCache on top of a Redis client.
type TrackingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTrackingCache connects to Redis and verifies the connection with a ping.
func NewTrackingCache(cfg Config) (*TrackingCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &TrackingCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

// Get returns the cached tracking payload for the barcode, nil on miss.
func (c *TrackingCache) Get(ctx context.Context, barcode string) ([]byte, error) {
	payload, err := c.client.Get(ctx, trackingKeyPrefix+barcode).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tracking entry %s: %w", barcode, err)
	}

	return payload, nil
}

// Set stores the tracking payload under the barcode with the configured TTL.
func (c *TrackingCache) Set(ctx context.Context, barcode string, payload []byte) error {
	if err := c.client.Set(ctx, trackingKeyPrefix+barcode, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set tracking entry %s: %w", barcode, err)
	}
	return nil
}

// Invalidate drops the cached entry for the barcode.
func (c *TrackingCache) Invalidate(ctx context.Context, barcode string) error {
	if err := c.client.Del(ctx, trackingKeyPrefix+barcode).Err(); err != nil {
		return fmt.Errorf("failed to invalidate tracking entry %s: %w", barcode, err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (c *TrackingCache) Close() error {
	return c.client.Close()
}
