package mem

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// LimiterStore hands out one token bucket per key. Buckets idle for longer
// than the store's TTL are evicted and start full again.
type LimiterStore interface {
	Allow(key string) bool
}

type Limiters struct {
	mu    sync.Mutex
	data  *cache.Cache
	limit rate.Limit
	burst int
}

func NewLimiters(perMinute, burst int, idleTTL time.Duration) *Limiters {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	if burst < 1 {
		burst = 1
	}
	return &Limiters{
		data:  cache.New(idleTTL, 2*idleTTL),
		limit: limit,
		burst: burst,
	}
}

func (s *Limiters) Allow(key string) bool {
	s.mu.Lock()
	var l *rate.Limiter
	if v, ok := s.data.Get(key); ok {
		l = v.(*rate.Limiter)
	} else {
		l = rate.NewLimiter(s.limit, s.burst)
	}
	// Set again to slide the idle expiry.
	s.data.SetDefault(key, l)
	s.mu.Unlock()

	return l.Allow()
}
