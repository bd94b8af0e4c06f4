package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ipLimiter hands out one token bucket per client IP. Entries idle for
// longer than idleTTL are swept so the map does not grow with every
// address that ever hit the endpoint.
type ipLimiter struct {
	mu      sync.Mutex
	clients map[string]*ipClient
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
}

type ipClient struct {
	bucket   *rate.Limiter
	lastSeen time.Time
}

func newIPLimiter(rps float64, burst int, idleTTL time.Duration) *ipLimiter {
	l := &ipLimiter{
		clients: make(map[string]*ipClient),
		limit:   rate.Limit(rps),
		burst:   burst,
		idleTTL: idleTTL,
	}
	go l.sweep()
	return l
}

func (l *ipLimiter) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		for ip, c := range l.clients {
			if time.Since(c.lastSeen) > l.idleTTL {
				delete(l.clients, ip)
			}
		}
		l.mu.Unlock()
	}
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	c, ok := l.clients[ip]
	if !ok {
		c = &ipClient{bucket: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = time.Now()
	bucket := c.bucket
	l.mu.Unlock()

	return bucket.Allow()
}

// RateLimitMiddleware throttles a route per client IP. It fronts checkout
// session creation, where a double-click or redirect loop would otherwise
// open a pile of sessions with the payment provider.
func RateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	limiter := newIPLimiter(rps, burst, 3*time.Minute)

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}
