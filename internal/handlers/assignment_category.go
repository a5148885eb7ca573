package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/educraft-backend/internal/logger"
	"github.com/yungbote/educraft-backend/internal/services"
)

type AssignmentCategoryHandler struct {
	log             *logger.Logger
	categoryService services.AssignmentCategoryService
}

func NewAssignmentCategoryHandler(log *logger.Logger, categoryService services.AssignmentCategoryService) *AssignmentCategoryHandler {
	return &AssignmentCategoryHandler{
		log:             log.With("handler", "AssignmentCategoryHandler"),
		categoryService: categoryService,
	}
}

type createCategoryRequest struct {
	Title          string      `json:"title" binding:"required"`
	SubTitle       string      `json:"sub_title"`
	SubCategoryIDs []uuid.UUID `json:"sub_category_ids"`
}

func (h *AssignmentCategoryHandler) Create(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	category, err := h.categoryService.CreateCategory(c.Request.Context(), services.CreateAssignmentCategoryInput{
		Title:          req.Title,
		SubTitle:       req.SubTitle,
		SubCategoryIDs: req.SubCategoryIDs,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, gin.H{"category": category})
}

func (h *AssignmentCategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"categories": categories})
}

func (h *AssignmentCategoryHandler) Get(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	category, err := h.categoryService.GetCategory(c.Request.Context(), categoryID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"category": category})
}

type updateCategoryRequest struct {
	Title          *string     `json:"title"`
	SubTitle       *string     `json:"sub_title"`
	SubCategoryIDs []uuid.UUID `json:"sub_category_ids"`
}

func (h *AssignmentCategoryHandler) Update(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.SubTitle != nil {
		fields["sub_title"] = *req.SubTitle
	}
	category, err := h.categoryService.UpdateCategory(c.Request.Context(), categoryID, fields, req.SubCategoryIDs)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"category": category})
}

func (h *AssignmentCategoryHandler) Delete(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	if err := h.categoryService.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

type createSubCategoryRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	SystemPrompt string `json:"system_prompt"`
}

func (h *AssignmentCategoryHandler) CreateSubCategory(c *gin.Context) {
	var req createSubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	subCategory, err := h.categoryService.CreateSubCategory(c.Request.Context(), req.Title, req.Description, req.SystemPrompt)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, gin.H{"sub_category": subCategory})
}

func (h *AssignmentCategoryHandler) ListSubCategories(c *gin.Context) {
	subCategories, err := h.categoryService.ListSubCategories(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"sub_categories": subCategories})
}

type updateSubCategoryRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	SystemPrompt *string `json:"system_prompt"`
}

func (h *AssignmentCategoryHandler) UpdateSubCategory(c *gin.Context) {
	subCategoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	var req updateSubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.SystemPrompt != nil {
		fields["system_prompt"] = *req.SystemPrompt
	}
	subCategory, err := h.categoryService.UpdateSubCategory(c.Request.Context(), subCategoryID, fields)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"sub_category": subCategory})
}

func (h *AssignmentCategoryHandler) DeleteSubCategory(c *gin.Context) {
	subCategoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	if err := h.categoryService.DeleteSubCategory(c.Request.Context(), subCategoryID); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
