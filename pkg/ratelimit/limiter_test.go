package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestRedisLimiter_FixedWindow(t *testing.T) {
	mr, rdb := newRedis(t)
	l := NewRedisLimiter(rdb, 5, time.Minute, "appointments")
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "request %d", i+1)
	}

	ok, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	// Другой ключ считается отдельно
	ok, err = l.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, ok)

	mr.FastForward(time.Minute + time.Second)

	ok, err = l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLimiter_SetsTTL(t *testing.T) {
	mr, rdb := newRedis(t)
	l := NewRedisLimiter(rdb, 5, time.Minute, "")

	_, err := l.Allow(context.Background(), "ip")
	require.NoError(t, err)

	assert.True(t, mr.Exists("rl:ip"))
	assert.Equal(t, time.Minute, mr.TTL("rl:ip"))
}

func TestRedisLimiter_RedisDown(t *testing.T) {
	mr, rdb := newRedis(t)
	l := NewRedisLimiter(rdb, 5, time.Minute, "rl")
	mr.Close()

	ok, err := l.Allow(context.Background(), "ip")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestLocalLimiter(t *testing.T) {
	l := NewLocalLimiter(5, time.Minute)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		ok, err := l.Allow(ctx, "ip")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, _ := l.Allow(ctx, "ip")
	assert.False(t, ok)

	ok, _ = l.Allow(ctx, "other")
	assert.True(t, ok)

	// Через 12 секунд восстанавливается один токен
	now = now.Add(12 * time.Second)
	ok, _ = l.Allow(ctx, "ip")
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "ip")
	assert.False(t, ok)

	now = now.Add(2 * time.Minute)
	ok, _ = l.Allow(ctx, "ip")
	assert.True(t, ok)
	assert.Len(t, l.visitors, 1)
}
