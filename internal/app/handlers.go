package app

import (
	"github.com/yungbote/educraft-backend/internal/handlers"
	"github.com/yungbote/educraft-backend/internal/logger"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Assignment *handlers.AssignmentHandler
	Category   *handlers.AssignmentCategoryHandler
	Course     *handlers.CourseHandler
	Catalog    *handlers.CatalogHandler
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:       handlers.NewAuthHandler(log, s.Auth),
		Assignment: handlers.NewAssignmentHandler(log, s.Assignment),
		Category:   handlers.NewAssignmentCategoryHandler(log, s.AssignmentCategory),
		Course:     handlers.NewCourseHandler(log, s.Course),
		Catalog:    handlers.NewCatalogHandler(log, s.Catalog),
	}
}
