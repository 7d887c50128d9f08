package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"zooarcadia/internal/httpapi/apierr"
)

// RateLimit throttles a route per client IP. Used on /api/login to slow
// credential stuffing; the limiter map is pruned lazily.
func RateLimit(perMinute, burst int) gin.HandlerFunc {
	type visitor struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}

	var (
		mu       sync.Mutex
		visitors = make(map[string]*visitor)
	)
	limit := rate.Limit(float64(perMinute) / 60.0)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		v, ok := visitors[ip]
		if !ok {
			// prune entries idle for more than an hour before growing the map
			if len(visitors) > 1000 {
				for key, old := range visitors {
					if time.Since(old.lastSeen) > time.Hour {
						delete(visitors, key)
					}
				}
			}
			v = &visitor{limiter: rate.NewLimiter(limit, burst)}
			visitors[ip] = v
		}
		v.lastSeen = time.Now()
		allowed := v.limiter.Allow()
		mu.Unlock()

		if !allowed {
			c.JSON(http.StatusTooManyRequests, apierr.Body("Trop de tentatives, réessayez plus tard", apierr.RateLimited))
			c.Abort()
			return
		}

		c.Next()
	}
}
