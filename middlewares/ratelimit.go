package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Rate limit tiers
const (
	// login/register
	limitStrict = rate.Limit(2)
	burstStrict = 5

	// everything else, when applied
	limitGeneral = rate.Limit(10)
	burstGeneral = 20
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors   = make(map[string]*visitor)
	visitorsMu sync.Mutex
)

func init() {
	go cleanupVisitors()
}

func getVisitor(key string, r rate.Limit, b int) *rate.Limiter {
	visitorsMu.Lock()
	defer visitorsMu.Unlock()

	v, exists := visitors[key]
	if !exists {
		limiter := rate.NewLimiter(r, b)
		visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}
	v.lastSeen = time.Now()
	return v.limiter
}

func cleanupVisitors() {
	for {
		time.Sleep(time.Minute)
		visitorsMu.Lock()
		for key, v := range visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(visitors, key)
			}
		}
		visitorsMu.Unlock()
	}
}

// limitBy keys the visitor map per tier so a caller throttled on one tier
// still has its full allowance on the other.
func limitBy(tier string, r rate.Limit, b int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !getVisitor(tier+":"+c.ClientIP(), r, b).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimitStrict guards credential endpoints.
func RateLimitStrict() gin.HandlerFunc { return limitBy("strict", limitStrict, burstStrict) }

// RateLimitGeneral throttles the public market surface.
func RateLimitGeneral() gin.HandlerFunc { return limitBy("general", limitGeneral, burstGeneral) }
