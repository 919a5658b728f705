package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/nutscript/helix-logs/internal/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1732470527, 0)
	store := cache.NewMemoryWithClock(func() time.Time { return now })

	require.NoError(t, store.Set(ctx, "user:rank:x", "admin", 5*time.Minute))

	value, ok, err := store.Get(ctx, "user:rank:x")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "admin", value)

	now = now.Add(5*time.Minute + time.Second)

	_, ok, err = store.Get(ctx, "user:rank:x")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryMiss(t *testing.T) {
	store := cache.NewMemory()

	_, ok, err := store.Get(context.Background(), "log:context:1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "log:context:46506098", cache.LogContextKey(46506098))
	assert.Equal(t, "user:rank:76561198236432500", cache.UserRankKey("76561198236432500"))
}
