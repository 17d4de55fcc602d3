// Package ratelimit throttles requests per client IP with token buckets.
package ratelimit

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Limiter hands out one token bucket per key. It is safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	rps     rate.Limit
	burst   int
	idle    time.Duration // drop buckets unused for this long
	now     func() time.Time
}

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// New creates a limiter allowing rps requests per second per key with the
// given burst. A non-positive rps disables limiting.
func New(rps float64, burst int) *Limiter {
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		buckets: make(map[string]*bucket),
		rps:     rate.Limit(rps),
		burst:   burst,
		idle:    3 * time.Minute,
		now:     time.Now,
	}
}

// Enabled reports whether the limiter throttles at all.
func (l *Limiter) Enabled() bool { return l != nil && l.rps > 0 }

// Allow reports whether a request for key may proceed now.
func (l *Limiter) Allow(key string) bool {
	if !l.Enabled() {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.rps, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now
	return b.lim.AllowN(now, 1)
}

// Sweep removes buckets idle for longer than the idle window and returns how
// many were dropped.
func (l *Limiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	cutoff := l.now().Add(-l.idle)
	n := 0
	for key, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, key)
			n++
		}
	}
	return n
}

// retryAfter is the whole number of seconds until one token refills.
func (l *Limiter) retryAfter() string {
	secs := int(math.Ceil(1 / float64(l.rps)))
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// Middleware rejects clients over their budget with 429 Too Many Requests.
// Health checks and static assets are never throttled.
func (l *Limiter) Middleware(logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Enabled() || exempt(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			ip := ClientIP(r)
			if !l.Allow(ip) {
				logger.Warn("rate limit exceeded",
					zap.String("ip", ip),
					zap.String("path", r.URL.Path))
				w.Header().Set("Retry-After", l.retryAfter())
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func exempt(path string) bool {
	return path == "/health" || strings.HasPrefix(path, "/health/") || strings.HasPrefix(path, "/static/")
}

// ClientIP extracts the client IP address from the request.
// It checks X-Forwarded-For and X-Real-IP headers first (for reverse proxy
// setups), then falls back to RemoteAddr.
func ClientIP(r *http.Request) string {
	// X-Forwarded-For is a comma-separated list; the first entry is the client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
			return ip
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// RemoteAddr might not have a port
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
