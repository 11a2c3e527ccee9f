package auth

import (
	"sync"
	"time"

	"github.com/deespora/backoffice/internal/config"
	goCache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long an idle client's limiter is remembered
const limiterIdleTTL = 15 * time.Minute

// Limiter throttles login attempts per client IP
type Limiter struct {
	mu       sync.Mutex
	limiters *goCache.Cache
	limit    rate.Limit
	burst    int
}

func NewLimiter(cfg *config.Configuration) *Limiter {
	limit := rate.Limit(cfg.Auth.RateLimit)
	if cfg.Auth.RateLimit <= 0 {
		limit = rate.Inf
	}
	burst := cfg.Auth.RateBurst
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		limiters: goCache.New(limiterIdleTTL, limiterIdleTTL),
		limit:    limit,
		burst:    burst,
	}
}

// Allow reports whether ip may attempt another login now
func (l *Limiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	var limiter *rate.Limiter
	if v, ok := l.limiters.Get(ip); ok {
		limiter = v.(*rate.Limiter)
	} else {
		limiter = rate.NewLimiter(l.limit, l.burst)
	}
	// refresh the idle expiry on every attempt
	l.limiters.SetDefault(ip, limiter)
	return limiter.Allow()
}
