package cache

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		c, err := NewClient(context.Background(), Config{})
		assert.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("Unreachable", func(t *testing.T) {
		c, err := NewClient(context.Background(), Config{Enabled: true, Addr: "127.0.0.1:1"})
		assert.ErrorContains(t, err, "failed to connect to redis")
		assert.Nil(t, c)
	})
}

func TestWrap(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	c := Wrap(rdb, "test:", 0)
	require.NotNil(t, c)
	assert.Equal(t, "test:", c.prefix)
	assert.NoError(t, c.Close())
}
