package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is a thin, namespaced wrapper around a Redis connection.
type Client struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewClient connects to Redis and verifies the connection.
// It returns nil without error when the cache is disabled.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return Wrap(rdb, cfg.KeyPrefix, time.Duration(cfg.TTLSeconds)*time.Second), nil
}

// Wrap adopts an existing connection.
func Wrap(rdb *redis.Client, prefix string, ttl time.Duration) *Client {
	return &Client{rdb: rdb, prefix: prefix, ttl: ttl}
}

// Set stores a value under the namespaced key.
func (c *Client) Set(ctx context.Context, key string, value []byte) error {
	return c.rdb.Set(ctx, c.prefix+key, value, c.ttl).Err()
}

// Get returns the value under the namespaced key, or nil if it is absent.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := c.rdb.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return b, err
}

// Publish announces a message on the namespaced channel.
func (c *Client) Publish(ctx context.Context, channel string, message string) error {
	return c.rdb.Publish(ctx, c.prefix+channel, message).Err()
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
