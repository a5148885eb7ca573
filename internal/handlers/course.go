package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/educraft-backend/internal/logger"
	"github.com/yungbote/educraft-backend/internal/middleware"
	"github.com/yungbote/educraft-backend/internal/services"
)

type CourseHandler struct {
	log           *logger.Logger
	courseService services.CourseService
}

func NewCourseHandler(log *logger.Logger, courseService services.CourseService) *CourseHandler {
	return &CourseHandler{
		log:           log.With("handler", "CourseHandler"),
		courseService: courseService,
	}
}

type createCourseRequest struct {
	Title                 string     `json:"title" binding:"required"`
	SubjectID             *uuid.UUID `json:"subject_id"`
	GradeID               *uuid.UUID `json:"grade_id"`
	Description           string     `json:"description" binding:"required"`
	GenerationPrompt      string     `json:"generation_prompt"`
	AdditionalInformation string     `json:"additional_information"`
	SystemPrompt          string     `json:"system_prompt" binding:"required"`
}

func (h *CourseHandler) Create(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req createCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	course, err := h.courseService.Create(c.Request.Context(), userID, services.CreateCourseInput{
		Title:                 req.Title,
		SubjectID:             req.SubjectID,
		GradeID:               req.GradeID,
		Description:           req.Description,
		GenerationPrompt:      req.GenerationPrompt,
		AdditionalInformation: req.AdditionalInformation,
		SystemPrompt:          req.SystemPrompt,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, gin.H{"course": course})
}

func (h *CourseHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)
	courses, err := h.courseService.GetUserCourses(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("List courses failed", "error", err, "user_id", userID)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"courses": courses})
}

func (h *CourseHandler) Get(c *gin.Context) {
	userID := middleware.UserID(c)
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	course, err := h.courseService.GetByID(c.Request.Context(), userID, courseID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"course": course})
}

type updateCourseRequest struct {
	Title                 *string `json:"title"`
	Description           *string `json:"description"`
	GenerationPrompt      *string `json:"generation_prompt"`
	AdditionalInformation *string `json:"additional_information"`
	SystemPrompt          *string `json:"system_prompt"`
}

func (h *CourseHandler) Update(c *gin.Context) {
	userID := middleware.UserID(c)
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	var req updateCourseRequest
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
	if req.GenerationPrompt != nil {
		fields["generation_prompt"] = *req.GenerationPrompt
	}
	if req.AdditionalInformation != nil {
		fields["additional_information"] = *req.AdditionalInformation
	}
	if req.SystemPrompt != nil {
		fields["system_prompt"] = *req.SystemPrompt
	}
	course, err := h.courseService.Update(c.Request.Context(), userID, courseID, fields)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"course": course})
}

func (h *CourseHandler) Delete(c *gin.Context) {
	userID := middleware.UserID(c)
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	if err := h.courseService.Delete(c.Request.Context(), userID, courseID); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
