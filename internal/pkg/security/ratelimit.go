package security

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "ratelimit:"

// allowScript counts an attempt and returns the verdict in one round trip.
// The INCR, the TTL on the first hit and the rollback of a denied attempt
// run inside the script, so a crash between them can never leave a counter
// without an expiry.
var allowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if count > tonumber(ARGV[2]) then
	redis.call("DECR", KEYS[1])
	return 0
end
return 1`)

// RateLimiter is a fixed-window attempt counter scoped by caller-supplied
// keys (e.g. "login_<email>"). State lives in Redis so all app instances
// share one window; when Redis is unreachable the limiter falls back to an
// in-process window, which keeps the per-process-lifetime guarantee. Window
// state does not survive a restart by design.
type RateLimiter struct {
	rdb redis.Scripter

	mu      sync.Mutex
	local   map[string][]time.Time
	nowFunc func() time.Time
}

// NewRateLimiter builds a limiter backed by the given Redis client. A nil
// client yields a purely in-process limiter.
func NewRateLimiter(rdb *redis.Client) *RateLimiter {
	l := &RateLimiter{
		local:   make(map[string][]time.Time),
		nowFunc: time.Now,
	}
	if rdb != nil {
		l.rdb = rdb
	}
	return l
}

// Allow records an attempt for key and reports whether it is still within
// maxAttempts per window. The check and the increment are one logical step:
// a denied attempt is not counted again.
func (l *RateLimiter) Allow(key string, maxAttempts int, window time.Duration) bool {
	if l.rdb != nil {
		if ok, err := l.allowRedis(key, maxAttempts, window); err == nil {
			return ok
		} else {
			log.Warnf("[RateLimit] redis unavailable for key %s, using in-process window: %v", key, err)
		}
	}

	return l.allowLocal(key, maxAttempts, window)
}

func (l *RateLimiter) allowRedis(key string, maxAttempts int, window time.Duration) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	res, err := allowScript.Run(ctx, l.rdb,
		[]string{rateLimitKeyPrefix + key},
		window.Milliseconds(), maxAttempts,
	).Int()
	if err != nil {
		return false, err
	}

	return res == 1, nil
}

func (l *RateLimiter) allowLocal(key string, maxAttempts int, window time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.nowFunc()
	cutoff := now.Add(-window)

	kept := l.local[key][:0]
	for _, t := range l.local[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= maxAttempts {
		l.local[key] = kept
		return false
	}

	l.local[key] = append(kept, now)
	return true
}
