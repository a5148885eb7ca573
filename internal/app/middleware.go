package app

import (
	"github.com/yungbote/educraft-backend/internal/clients/redis"
	"github.com/yungbote/educraft-backend/internal/logger"
	"github.com/yungbote/educraft-backend/internal/middleware"
)

type Middleware struct {
	Auth      *middleware.AuthMiddleware
	RateLimit *middleware.RateLimitMiddleware
}

func wireMiddleware(log *logger.Logger, cfg Config, s Services) Middleware {
	log.Info("Wiring middleware...")

	limiter, err := redis.NewRateLimiter(log)
	if err != nil {
		// The rate limit middleware fails open on a nil limiter.
		log.Warn("Rate limiter disabled", "error", err)
		limiter = nil
	}

	return Middleware{
		Auth:      middleware.NewAuthMiddleware(log, s.Auth),
		RateLimit: middleware.NewRateLimitMiddleware(log, limiter, cfg.GenerationRateLimit, cfg.GenerationRateWindow),
	}
}
