package intake

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func exerciseLimiter(t *testing.T, l Limiter, c *clock) {
	ctx := context.Background()

	for i := 0; i < DefaultRateLimit; i++ {
		d, err := l.Allow(ctx, "203.0.113.7")
		require.NoError(t, err)
		assert.True(t, d.Allowed, "request %d", i+1)
		assert.Equal(t, DefaultRateLimit-i-1, d.Remaining)
		c.advance(time.Minute)
	}

	d, err := l.Allow(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 10*time.Minute, d.RetryAfter, "oldest hit leaves the window 15m after it landed")

	other, err := l.Allow(ctx, "198.51.100.1")
	require.NoError(t, err)
	assert.True(t, other.Allowed, "identifiers are counted separately")

	c.advance(10*time.Minute + time.Second)
	d, err = l.Allow(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.True(t, d.Allowed, "window slides once the oldest hit expires")

	d, err = l.Allow(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
}

func TestMemoryLimiter(t *testing.T) {
	c := &clock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	l := NewMemoryLimiter(0, 0)
	l.now = c.now
	exerciseLimiter(t, l, c)
}

func TestRedisLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c := &clock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	l := NewRedisLimiter(client, 0, 0)
	l.now = c.now
	exerciseLimiter(t, l, c)

	for _, k := range mr.Keys() {
		assert.NotContains(t, k, "203.0.113.7", "identifiers are hashed")
	}
}
