package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"karobar-dashboard/pkg/response"
)

// rateLimiter tracks one token bucket per client, with idle entries aged
// out by the expirable LRU.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // max unique clients
			nil,           // no eviction callback
			time.Minute*5, // TTL for idle clients
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// PaymentRateLimit throttles checkout attempts per client IP. The mocked
// gateway holds a worker for the whole simulated delay, so unbounded
// checkout traffic is the easiest way to starve the server.
func (m Middleware) PaymentRateLimit(requestsPerMin int) gin.HandlerFunc {
	rl := newRateLimiter(requestsPerMin)
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			m.l.Warnf(c.Request.Context(), "payment rate limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
