package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/educraft-backend/internal/ai"
	"github.com/yungbote/educraft-backend/internal/logger"
	"github.com/yungbote/educraft-backend/internal/services"
)

type Services struct {
	Auth               services.AuthService
	Catalog            services.CatalogService
	Course             services.CourseService
	AssignmentCategory services.AssignmentCategoryService
	AssignmentPrompt   services.AssignmentPromptService
	Assignment         services.AssignmentService
}

// wireBackends registers every model backend whose credentials are present.
// A missing key disables that backend only; requests routed to it fail with
// an unsupported model type error instead of a partial client.
func wireBackends(log *logger.Logger) map[ai.ModelType]ai.Backend {
	backends := make(map[ai.ModelType]ai.Backend)

	if gemini, err := ai.NewGeminiBackend(log); err != nil {
		log.Warn("Gemini backend disabled", "error", err)
	} else {
		backends[ai.ModelTypeGeminiFlash] = gemini
	}

	if openai, err := ai.NewOpenAIBackend(log); err != nil {
		log.Warn("OpenAI backend disabled", "error", err)
	} else {
		backends[ai.ModelTypeOpenAI] = openai
	}

	return backends
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos) Services {
	log.Info("Wiring services...")

	runner := ai.NewRunner(log, wireBackends(log))

	authService := services.NewAuthService(log, r.User, cfg.JWTSecretKey, cfg.AccessTokenTTL)
	catalogService := services.NewCatalogService(log, r.Subject, r.Grade)
	courseService := services.NewCourseService(log, r.Course)
	categoryService := services.NewAssignmentCategoryService(db, log, r.AssignmentCategory, r.AssignmentSubCategory)
	promptService := services.NewAssignmentPromptService(
		log,
		services.AssignmentPromptConfig{
			ModelType:       cfg.ModelType,
			GenerateTimeout: cfg.GenerateTimeout,
		},
		runner,
		r.Course,
		r.AssignmentCategory,
	)
	assignmentService := services.NewAssignmentService(db, log, r.Assignment, promptService)

	return Services{
		Auth:               authService,
		Catalog:            catalogService,
		Course:             courseService,
		AssignmentCategory: categoryService,
		AssignmentPrompt:   promptService,
		Assignment:         assignmentService,
	}
}
