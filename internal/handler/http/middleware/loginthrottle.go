// Package middleware holds HTTP middleware shared across handler packages.
package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"pressroom/internal/handler/http/respond"
)

// LoginThrottle rate-limits credential endpoints per client IP. Each IP gets
// a token bucket refilled at perMinute events per minute with the given
// burst. Buckets idle longer than idleTTL are evicted.
type LoginThrottle struct {
	mu      sync.Mutex
	clients map[string]*throttleClient

	limit   rate.Limit
	burst   int
	idleTTL time.Duration
}

type throttleClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLoginThrottle creates a throttle. Non-positive perMinute disables it.
func NewLoginThrottle(perMinute, burst int) *LoginThrottle {
	if burst < 1 {
		burst = 1
	}
	return &LoginThrottle{
		clients: make(map[string]*throttleClient),
		limit:   rate.Limit(float64(perMinute) / 60.0),
		burst:   burst,
		idleTTL: 10 * time.Minute,
	}
}

// Wrap applies the throttle to next.
func (t *LoginThrottle) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if t.limit <= 0 {
			next.ServeHTTP(w, r)
			return
		}
		if !t.allow(clientIP(r)) {
			w.Header().Set("Retry-After", "60")
			respond.Fail(w, http.StatusTooManyRequests, "too many login attempts")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (t *LoginThrottle) allow(ip string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	c, ok := t.clients[ip]
	if !ok {
		c = &throttleClient{limiter: rate.NewLimiter(t.limit, t.burst)}
		t.clients[ip] = c
	}
	c.lastSeen = now

	// Opportunistic eviction keeps the map from growing unbounded without
	// a background goroutine.
	if len(t.clients) > 1024 {
		for key, cl := range t.clients {
			if now.Sub(cl.lastSeen) > t.idleTTL {
				delete(t.clients, key)
			}
		}
	}
	return c.limiter.Allow()
}

// clientIP extracts the connection IP, dropping the port. Forwarding headers
// are deliberately not trusted here.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
