package ratelimit

import (
	"context"
	"os"
	"sync"

	"golang.org/x/time/rate"
)

// Per-host politeness limit for page fetches. Price pages are scraped, not
// served by an API with a published quota, so the default is deliberately
// conservative.
const (
	defaultPerHostRate  = rate.Limit(1)
	defaultPerHostBurst = 2
)

// Limiter manages rate limits keyed by target host.
type Limiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
}

var (
	instance *Limiter
	once     sync.Once
)

// Get returns the singleton rate limiter instance
func Get() *Limiter {
	once.Do(func() {
		instance = &Limiter{
			limiters: make(map[string]*rate.Limiter),
		}
	})
	return instance
}

// isTestMode checks if we're running in test mode
func isTestMode() bool {
	if os.Getenv("GO_TESTING") == "1" {
		return true
	}
	for _, arg := range os.Args {
		if len(arg) > 6 && arg[:6] == "-test." {
			return true
		}
	}
	return false
}

func (l *Limiter) limiterFor(host string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.limiters[host]
	if !exists {
		// Unlimited in tests so mock servers aren't throttled
		if isTestMode() {
			limiter = rate.NewLimiter(rate.Inf, 1)
		} else {
			limiter = rate.NewLimiter(defaultPerHostRate, defaultPerHostBurst)
		}
		l.limiters[host] = limiter
	}
	return limiter
}

// Wait blocks until the limiter for the given host permits a request.
// It returns an error if the context is canceled before the event can proceed
func (l *Limiter) Wait(ctx context.Context, host string) error {
	return l.limiterFor(host).Wait(ctx)
}

// Allow reports whether a request to the given host may happen now
func (l *Limiter) Allow(host string) bool {
	return l.limiterFor(host).Allow()
}
