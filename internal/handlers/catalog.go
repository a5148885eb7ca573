package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/educraft-backend/internal/logger"
	"github.com/yungbote/educraft-backend/internal/services"
)

type CatalogHandler struct {
	log            *logger.Logger
	catalogService services.CatalogService
}

func NewCatalogHandler(log *logger.Logger, catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		log:            log.With("handler", "CatalogHandler"),
		catalogService: catalogService,
	}
}

type createCatalogEntryRequest struct {
	Title        string `json:"title" binding:"required"`
	SystemPrompt string `json:"system_prompt" binding:"required"`
}

func (h *CatalogHandler) CreateSubject(c *gin.Context) {
	var req createCatalogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	subject, err := h.catalogService.CreateSubject(c.Request.Context(), req.Title, req.SystemPrompt)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, gin.H{"subject": subject})
}

func (h *CatalogHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.catalogService.ListSubjects(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"subjects": subjects})
}

func (h *CatalogHandler) CreateGrade(c *gin.Context) {
	var req createCatalogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	grade, err := h.catalogService.CreateGrade(c.Request.Context(), req.Title, req.SystemPrompt)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, gin.H{"grade": grade})
}

func (h *CatalogHandler) ListGrades(c *gin.Context) {
	grades, err := h.catalogService.ListGrades(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"grades": grades})
}
