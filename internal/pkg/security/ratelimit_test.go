package security

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// fakeScripter executes the limiter script's semantics in memory: count the
// attempt, stamp a TTL on the first hit, roll back a denied attempt.
type fakeScripter struct {
	counts  map[string]int
	expires map[string]int
}

func newFakeScripter() *fakeScripter {
	return &fakeScripter{counts: make(map[string]int), expires: make(map[string]int)}
}

func (f *fakeScripter) run(keys []string, args []interface{}) *redis.Cmd {
	key := keys[0]
	f.counts[key]++
	if f.counts[key] == 1 {
		f.expires[key]++
	}
	max, _ := strconv.Atoi(fmt.Sprint(args[1]))
	if f.counts[key] > max {
		f.counts[key]--
		return redis.NewCmdResult(int64(0), nil)
	}
	return redis.NewCmdResult(int64(1), nil)
}

func (f *fakeScripter) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	return f.run(keys, args)
}

func (f *fakeScripter) EvalSha(ctx context.Context, sha1 string, keys []string, args ...interface{}) *redis.Cmd {
	return f.run(keys, args)
}

func (f *fakeScripter) EvalRO(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	return f.run(keys, args)
}

func (f *fakeScripter) EvalShaRO(ctx context.Context, sha1 string, keys []string, args ...interface{}) *redis.Cmd {
	return f.run(keys, args)
}

func (f *fakeScripter) ScriptExists(ctx context.Context, hashes ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceResult([]bool{}, nil)
}

func (f *fakeScripter) ScriptLoad(ctx context.Context, script string) *redis.StringCmd {
	return redis.NewStringResult("", nil)
}

func TestRateLimiterSharedWindowCountsOnce(t *testing.T) {
	fake := newFakeScripter()
	l := NewRateLimiter(nil)
	l.rdb = fake

	for i := 0; i < 5; i++ {
		assert.True(t, l.Allow("login_alice@example.com", 5, 5*time.Minute))
	}
	for i := 0; i < 10; i++ {
		assert.False(t, l.Allow("login_alice@example.com", 5, 5*time.Minute))
	}

	key := rateLimitKeyPrefix + "login_alice@example.com"
	// denied attempts were rolled back inside the same script call
	assert.Equal(t, 5, fake.counts[key])
	// the expiry was bound to the very first increment, exactly once
	assert.Equal(t, 1, fake.expires[key])

	// the in-process fallback map stays untouched while redis answers
	assert.Empty(t, l.local)
}

func TestRateLimiterAllowsUpToMax(t *testing.T) {
	l := NewRateLimiter(nil)

	for i := 0; i < 5; i++ {
		assert.True(t, l.Allow("login_alice@example.com", 5, 5*time.Minute), "attempt %d should pass", i+1)
	}
	assert.False(t, l.Allow("login_alice@example.com", 5, 5*time.Minute))
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	l := NewRateLimiter(nil)

	for i := 0; i < 5; i++ {
		l.Allow("login_alice@example.com", 5, 5*time.Minute)
	}
	assert.False(t, l.Allow("login_alice@example.com", 5, 5*time.Minute))
	assert.True(t, l.Allow("login_bob@example.com", 5, 5*time.Minute))
	assert.True(t, l.Allow("register_alice@example.com", 3, time.Hour))
}

func TestRateLimiterWindowSlides(t *testing.T) {
	l := NewRateLimiter(nil)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.nowFunc = func() time.Time { return now }

	for i := 0; i < 5; i++ {
		assert.True(t, l.Allow("k", 5, 5*time.Minute))
	}
	assert.False(t, l.Allow("k", 5, 5*time.Minute))

	// still inside the window
	now = now.Add(4 * time.Minute)
	assert.False(t, l.Allow("k", 5, 5*time.Minute))

	// the first attempts have aged out
	now = now.Add(2 * time.Minute)
	assert.True(t, l.Allow("k", 5, 5*time.Minute))
}

func TestRateLimiterDeniedAttemptNotCounted(t *testing.T) {
	l := NewRateLimiter(nil)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.nowFunc = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		l.Allow("k", 3, time.Minute)
	}
	// hammering while denied must not extend the window
	for i := 0; i < 10; i++ {
		assert.False(t, l.Allow("k", 3, time.Minute))
	}

	now = now.Add(time.Minute + time.Second)
	assert.True(t, l.Allow("k", 3, time.Minute))
}
