package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

// RateLimiter limita por viewer los endpoints "AI" (token bucket).
// perSecond <= 0 deshabilita el límite.
type RateLimiter struct {
	mu        sync.Mutex
	perSecond rate.Limit
	burst     int
	byViewer  map[string]*viewerLimiter
	now       func() time.Time
}

type viewerLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		perSecond: rate.Limit(perSecond),
		burst:     burst,
		byViewer:  make(map[string]*viewerLimiter),
		now:       time.Now,
	}
}

// Allow consume un token del viewer.
func (l *RateLimiter) Allow(viewer string) bool {
	if l == nil || l.perSecond <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.evictIdle(now)

	vl, ok := l.byViewer[viewer]
	if !ok {
		vl = &viewerLimiter{limiter: rate.NewLimiter(l.perSecond, l.burst)}
		l.byViewer[viewer] = vl
	}
	vl.lastSeen = now
	return vl.limiter.AllowN(now, 1)
}

func (l *RateLimiter) evictIdle(now time.Time) {
	for k, vl := range l.byViewer {
		if now.Sub(vl.lastSeen) > limiterIdleTTL {
			delete(l.byViewer, k)
		}
	}
}

// Limit responde 429 cuando el viewer agotó su cupo.
func (l *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(Viewer(r.Context())) {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
