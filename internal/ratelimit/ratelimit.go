package ratelimit

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// entries idle longer than this are dropped from the table
const staleAfter = 10 * time.Minute

// per-client token buckets keyed by IP
type Limiter struct {
	mu       sync.Mutex
	clients  map[string]*client
	limit    rate.Limit
	burst    int
	lastScan time.Time
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// creates a limiter allowing rps requests per second with the given burst
func New(rps float64, burst int) *Limiter {
	return &Limiter{
		clients: map[string]*client{},
		limit:   rate.Limit(rps),
		burst:   burst,
	}
}

// returns a Gin middleware rejecting clients over the limit with 429
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func (l *Limiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	// opportunistic cleanup of idle entries
	if now.Sub(l.lastScan) > staleAfter {
		for key, entry := range l.clients {
			if now.Sub(entry.lastSeen) > staleAfter {
				delete(l.clients, key)
			}
		}
		l.lastScan = now
	}

	entry, exists := l.clients[ip]
	if !exists {
		entry = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = entry
	}
	entry.lastSeen = now

	return entry.limiter.Allow()
}
