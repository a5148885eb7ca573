package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/educraft-backend/internal/server"
)

func wireRouter(cfg Config, h Handlers, mw Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AuthHandler:         h.Auth,
		AssignmentHandler:   h.Assignment,
		CategoryHandler:     h.Category,
		CourseHandler:       h.Course,
		CatalogHandler:      h.Catalog,
		AuthMiddleware:      mw.Auth,
		RateLimitMiddleware: mw.RateLimit,
		AllowOrigins:        cfg.AllowOrigins,
	})
}
