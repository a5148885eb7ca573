package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/educraft-backend/internal/logger"
	"github.com/yungbote/educraft-backend/internal/middleware"
	"github.com/yungbote/educraft-backend/internal/services"
)

type AssignmentHandler struct {
	log               *logger.Logger
	assignmentService services.AssignmentService
}

func NewAssignmentHandler(log *logger.Logger, assignmentService services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{
		log:               log.With("handler", "AssignmentHandler"),
		assignmentService: assignmentService,
	}
}

type createAssignmentRequest struct {
	Title                         string     `json:"title" binding:"required"`
	CourseID                      *uuid.UUID `json:"course_id"`
	AssignmentCategoryID          uuid.UUID  `json:"assignment_category_id" binding:"required"`
	DueDate                       time.Time  `json:"due_date" binding:"required"`
	Description                   string     `json:"description"`
	LearningObjectivesDescription string     `json:"learning_objectives_description"`
	Canvas                        bool       `json:"canvas"`
	Google                        bool       `json:"google"`
	GoogleMeet                    bool       `json:"google_meet"`
}

func (h *AssignmentHandler) Create(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var req createAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}

	assignment, err := h.assignmentService.Create(c.Request.Context(), userID, services.CreateAssignmentInput{
		Title:                         req.Title,
		CourseID:                      req.CourseID,
		AssignmentCategoryID:          req.AssignmentCategoryID,
		DueDate:                       req.DueDate,
		Description:                   req.Description,
		LearningObjectivesDescription: req.LearningObjectivesDescription,
		Canvas:                        req.Canvas,
		Google:                        req.Google,
		GoogleMeet:                    req.GoogleMeet,
	})
	if err != nil {
		h.log.Error("Create assignment failed", "error", err, "user_id", userID)
		RespondServiceError(c, err)
		return
	}

	RespondCreated(c, gin.H{"assignment": assignment})
}

func (h *AssignmentHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	assignments, err := h.assignmentService.GetUserAssignments(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("List assignments failed", "error", err, "user_id", userID)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"assignments": assignments})
}

func (h *AssignmentHandler) Get(c *gin.Context) {
	userID := middleware.UserID(c)
	assignmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	assignment, err := h.assignmentService.GetByID(c.Request.Context(), userID, assignmentID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"assignment": assignment})
}

type updateAssignmentRequest struct {
	Title                         *string    `json:"title"`
	CourseID                      *uuid.UUID `json:"course_id"`
	AssignmentCategoryID          *uuid.UUID `json:"assignment_category_id"`
	DueDate                       *time.Time `json:"due_date"`
	Description                   *string    `json:"description"`
	LearningObjectivesDescription *string    `json:"learning_objectives_description"`
	Canvas                        *bool      `json:"canvas"`
	Google                        *bool      `json:"google"`
	GoogleMeet                    *bool      `json:"google_meet"`
	SystemPrompt                  *string    `json:"system_prompt"`
}

func (h *AssignmentHandler) Update(c *gin.Context) {
	userID := middleware.UserID(c)
	assignmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}

	var req updateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}

	assignment, err := h.assignmentService.Update(c.Request.Context(), userID, assignmentID, services.UpdateAssignmentInput{
		Title:                         req.Title,
		CourseID:                      req.CourseID,
		AssignmentCategoryID:          req.AssignmentCategoryID,
		DueDate:                       req.DueDate,
		Description:                   req.Description,
		LearningObjectivesDescription: req.LearningObjectivesDescription,
		Canvas:                        req.Canvas,
		Google:                        req.Google,
		GoogleMeet:                    req.GoogleMeet,
		SystemPrompt:                  req.SystemPrompt,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	RespondOK(c, gin.H{"assignment": assignment})
}

func (h *AssignmentHandler) Delete(c *gin.Context) {
	userID := middleware.UserID(c)
	assignmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	if err := h.assignmentService.Delete(c.Request.Context(), userID, assignmentID); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
