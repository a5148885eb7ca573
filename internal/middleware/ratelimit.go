package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/educraft-backend/internal/clients/redis"
	"github.com/yungbote/educraft-backend/internal/logger"
)

type RateLimitMiddleware struct {
	log     *logger.Logger
	limiter redis.RateLimiter
	limit   int
	window  time.Duration
}

func NewRateLimitMiddleware(log *logger.Logger, limiter redis.RateLimiter, limit int, window time.Duration) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		log:     log.With("middleware", "RateLimitMiddleware"),
		limiter: limiter,
		limit:   limit,
		window:  window,
	}
}

// LimitGeneration caps how often a single user can trigger model-backed
// generation. Fails open when the limiter itself is unavailable.
func (rm *RateLimitMiddleware) LimitGeneration() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rm.limiter == nil {
			c.Next()
			return
		}
		userID := UserID(c)
		if userID == uuid.Nil {
			c.Next()
			return
		}
		allowed, err := rm.limiter.Allow(c.Request.Context(), "generation:"+userID.String(), rm.limit, rm.window)
		if err != nil {
			rm.log.Warn("Rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "generation rate limit exceeded"})
			return
		}
		c.Next()
	}
}
