package intake

import (
	"context"
	"encoding/hex"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/blake2b"
)

const (
	DefaultRateLimit  = 5
	DefaultRateWindow = 15 * time.Minute
)

// Decision is the outcome of one rate-limit check.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter counts requests per identifier over a sliding window.
type Limiter interface {
	Allow(ctx context.Context, identifier string) (Decision, error)
}

// hashIdentifier keeps raw IPs and emails out of Redis keys.
func hashIdentifier(id string) string {
	sum := blake2b.Sum256([]byte(id))
	return hex.EncodeToString(sum[:16])
}

func retryAfter(oldest time.Time, window time.Duration, now time.Time) time.Duration {
	d := oldest.Add(window).Sub(now)
	if d < time.Second {
		d = time.Second
	}
	return d.Truncate(time.Second)
}

// RedisLimiter keeps one sorted set per identifier, scored by request time
// in milliseconds.
type RedisLimiter struct {
	client *redis.Client
	max    int
	window time.Duration
	prefix string
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client, max int, window time.Duration) *RedisLimiter {
	if max <= 0 {
		max = DefaultRateLimit
	}
	if window <= 0 {
		window = DefaultRateWindow
	}
	return &RedisLimiter{client: client, max: max, window: window, prefix: "ratelimit:intake:", now: time.Now}
}

func (l *RedisLimiter) Allow(ctx context.Context, identifier string) (Decision, error) {
	key := l.prefix + hashIdentifier(identifier)
	now := l.now()
	nowMs := now.UnixMilli()
	member := strconv.FormatInt(now.UnixNano(), 10) + "-" + uuid.NewString()

	var card *redis.IntCmd
	var oldest *redis.ZSliceCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, key, "-inf", "("+strconv.FormatInt(nowMs-l.window.Milliseconds(), 10))
		pipe.ZAdd(ctx, key, redis.Z{Score: float64(nowMs), Member: member})
		card = pipe.ZCard(ctx, key)
		oldest = pipe.ZRangeWithScores(ctx, key, 0, 0)
		pipe.PExpire(ctx, key, l.window)
		return nil
	})
	if err != nil {
		return Decision{}, err
	}

	count := int(card.Val())
	if count <= l.max {
		return Decision{Allowed: true, Remaining: l.max - count}, nil
	}

	// Over the limit: this request does not count against the window.
	if err := l.client.ZRem(ctx, key, member).Err(); err != nil {
		return Decision{}, err
	}
	first := now
	if zs := oldest.Val(); len(zs) > 0 {
		first = time.UnixMilli(int64(zs[0].Score))
	}
	return Decision{Allowed: false, RetryAfter: retryAfter(first, l.window, now)}, nil
}

// MemoryLimiter is the single-process fallback when Redis is not configured.
type MemoryLimiter struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	hits   map[string][]time.Time
	now    func() time.Time
}

func NewMemoryLimiter(max int, window time.Duration) *MemoryLimiter {
	if max <= 0 {
		max = DefaultRateLimit
	}
	if window <= 0 {
		window = DefaultRateWindow
	}
	return &MemoryLimiter{max: max, window: window, hits: map[string][]time.Time{}, now: time.Now}
}

func (l *MemoryLimiter) Allow(_ context.Context, identifier string) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := hashIdentifier(identifier)
	now := l.now()
	cutoff := now.Add(-l.window)

	kept := l.hits[key][:0]
	for _, t := range l.hits[key] {
		if !t.Before(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= l.max {
		l.hits[key] = kept
		return Decision{Allowed: false, RetryAfter: retryAfter(kept[0], l.window, now)}, nil
	}
	kept = append(kept, now)
	l.hits[key] = kept
	return Decision{Allowed: true, Remaining: l.max - len(kept)}, nil
}
