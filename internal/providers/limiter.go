package providers

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiter holds one token bucket per upstream source so a burst of
// searches cannot burn through a provider's API quota. Wait only delays a
// call; it never rejects one, so result semantics are unaffected.
type RateLimiter struct {
	perMinute int
	limiters  map[string]*rate.Limiter
	mu        sync.Mutex
}

// NewRateLimiter creates a limiter allowing perMinute requests per source.
// A non-positive perMinute disables limiting.
func NewRateLimiter(perMinute int) *RateLimiter {
	return &RateLimiter{
		perMinute: perMinute,
		limiters:  make(map[string]*rate.Limiter),
	}
}

// Wait blocks until the source may make a request or ctx expires.
func (rl *RateLimiter) Wait(ctx context.Context, source string) error {
	rl.mu.Lock()
	limiter, ok := rl.limiters[source]
	if !ok {
		limit := rate.Inf
		if rl.perMinute > 0 {
			limit = rate.Limit(float64(rl.perMinute) / 60.0)
		}
		limiter = rate.NewLimiter(limit, 5)
		rl.limiters[source] = limiter
	}
	rl.mu.Unlock()

	return limiter.Wait(ctx)
}
