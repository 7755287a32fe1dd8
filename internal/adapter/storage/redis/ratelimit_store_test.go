package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RateLimitStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRateLimitStore(client), mr
}

func TestRateLimitStore_Allow(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	t.Run("allows requests within limit", func(t *testing.T) {
		for i := int64(1); i <= 3; i++ {
			result, err := store.Allow(ctx, "10.0.0.1:panel", 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, result.Allowed, "request %d should be allowed", i)
			assert.Equal(t, int64(3), result.Limit)
			assert.Equal(t, 3-i, result.Remaining)
		}
	})

	t.Run("blocks requests over limit", func(t *testing.T) {
		result, err := store.Allow(ctx, "10.0.0.1:panel", 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Equal(t, int64(0), result.Remaining)
	})

	t.Run("different keys are independent", func(t *testing.T) {
		result, err := store.Allow(ctx, "10.0.0.2:panel", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, int64(4), result.Remaining)
	})

	t.Run("reset at end of window", func(t *testing.T) {
		result, err := store.Allow(ctx, "10.0.0.3:operator", 10, time.Minute)
		require.NoError(t, err)
		assert.Zero(t, result.ResetAt%60)
		assert.Greater(t, result.ResetAt, time.Now().Unix()-1)
	})

	t.Run("rejects sub-second windows", func(t *testing.T) {
		_, err := store.Allow(ctx, "10.0.0.4:panel", 1, 500*time.Millisecond)
		assert.Error(t, err)
	})
}

func TestRateLimitStore_NewWindow(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	now := time.Unix(1_700_000_000, 0)
	store.now = func() time.Time { return now }

	_, err := store.Allow(ctx, "tech:operator_login", 1, time.Minute)
	require.NoError(t, err)

	result, err := store.Allow(ctx, "tech:operator_login", 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, result.Allowed)

	now = now.Add(time.Minute)
	result, err = store.Allow(ctx, "tech:operator_login", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func TestRateLimitStore_KeyExpires(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()
	now := time.Unix(1_700_000_000, 0)
	store.now = func() time.Time { return now }

	_, err := store.Allow(ctx, "10.0.0.9:panel", 5, time.Minute)
	require.NoError(t, err)

	key := "vend:ratelimit:10.0.0.9:panel:28333333"
	require.True(t, mr.Exists(key))
	assert.Equal(t, 61*time.Second, mr.TTL(key))

	mr.FastForward(62 * time.Second)
	assert.False(t, mr.Exists(key))
}

func TestRateLimitStore_RedisDown(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()

	_, err := store.Allow(context.Background(), "10.0.0.1:panel", 1, time.Minute)
	assert.Error(t, err)
}
