package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/educraft-backend/internal/handlers"
	"github.com/yungbote/educraft-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler         *handlers.AuthHandler
	AssignmentHandler   *handlers.AssignmentHandler
	CategoryHandler     *handlers.AssignmentCategoryHandler
	CourseHandler       *handlers.CourseHandler
	CatalogHandler      *handlers.CatalogHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	AllowOrigins        []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(otelgin.Middleware("educraft"))

	// Cors
	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	api := router.Group("/api")
	{
		api.POST("/register", cfg.AuthHandler.Register)
		api.POST("/login", cfg.AuthHandler.Login)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Assignments
	protected.POST("/assignments", cfg.RateLimitMiddleware.LimitGeneration(), cfg.AssignmentHandler.Create)
	protected.GET("/assignments", cfg.AssignmentHandler.List)
	protected.GET("/assignments/:id", cfg.AssignmentHandler.Get)
	protected.PATCH("/assignments/:id", cfg.AssignmentHandler.Update)
	protected.DELETE("/assignments/:id", cfg.AssignmentHandler.Delete)
	// Assignment categories
	protected.POST("/assignment-categories", cfg.CategoryHandler.Create)
	protected.GET("/assignment-categories", cfg.CategoryHandler.List)
	protected.GET("/assignment-categories/:id", cfg.CategoryHandler.Get)
	protected.PATCH("/assignment-categories/:id", cfg.CategoryHandler.Update)
	protected.DELETE("/assignment-categories/:id", cfg.CategoryHandler.Delete)
	// Assignment sub categories
	protected.POST("/assignment-sub-categories", cfg.CategoryHandler.CreateSubCategory)
	protected.GET("/assignment-sub-categories", cfg.CategoryHandler.ListSubCategories)
	protected.PATCH("/assignment-sub-categories/:id", cfg.CategoryHandler.UpdateSubCategory)
	protected.DELETE("/assignment-sub-categories/:id", cfg.CategoryHandler.DeleteSubCategory)
	// Courses
	protected.POST("/courses", cfg.CourseHandler.Create)
	protected.GET("/courses", cfg.CourseHandler.List)
	protected.GET("/courses/:id", cfg.CourseHandler.Get)
	protected.PATCH("/courses/:id", cfg.CourseHandler.Update)
	protected.DELETE("/courses/:id", cfg.CourseHandler.Delete)
	// Catalog
	protected.POST("/subjects", cfg.CatalogHandler.CreateSubject)
	protected.GET("/subjects", cfg.CatalogHandler.ListSubjects)
	protected.POST("/grades", cfg.CatalogHandler.CreateGrade)
	protected.GET("/grades", cfg.CatalogHandler.ListGrades)

	return router
}
