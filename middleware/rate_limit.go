package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type RateLimiterConfig struct {
	RequestsPerSecond int
	Burst             int
	CleanupInterval   time.Duration
	TTL               time.Duration
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type limiterPool struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      int
	burst    int
}

func (p *limiterPool) get(ip string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	v, ok := p.visitors[ip]
	if !ok {
		l := rate.NewLimiter(rate.Limit(p.rps), p.burst)
		p.visitors[ip] = &visitor{l, time.Now()}
		return l
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func (p *limiterPool) cleanup(ttl, interval time.Duration) {
	for {
		time.Sleep(interval)

		p.mu.Lock()
		for ip, v := range p.visitors {
			if time.Since(v.lastSeen) > ttl {
				delete(p.visitors, ip)
			}
		}
		p.mu.Unlock()
	}
}

// RateLimiterMiddleware limits requests per client IP
func RateLimiterMiddleware(config RateLimiterConfig) gin.HandlerFunc {
	if config.CleanupInterval == 0 {
		config.CleanupInterval = time.Minute
	}
	if config.TTL == 0 {
		config.TTL = 3 * time.Minute
	}

	pool := &limiterPool{
		visitors: make(map[string]*visitor),
		rps:      config.RequestsPerSecond,
		burst:    config.Burst,
	}

	go pool.cleanup(config.TTL, config.CleanupInterval)

	return func(c *gin.Context) {
		if !pool.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			return
		}

		c.Next()
	}
}
