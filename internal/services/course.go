package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/educraft-backend/internal/logger"
	pkgerrors "github.com/yungbote/educraft-backend/internal/pkg/errors"
	"github.com/yungbote/educraft-backend/internal/repos"
	"github.com/yungbote/educraft-backend/internal/types"
)

type CreateCourseInput struct {
	Title                 string
	SubjectID             *uuid.UUID
	GradeID               *uuid.UUID
	Description           string
	GenerationPrompt      string
	AdditionalInformation string
	SystemPrompt          string
}

type CourseService interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateCourseInput) (*types.Course, error)
	GetUserCourses(ctx context.Context, userID uuid.UUID) ([]*types.Course, error)
	GetByID(ctx context.Context, userID uuid.UUID, courseID uuid.UUID) (*types.Course, error)
	Update(ctx context.Context, userID uuid.UUID, courseID uuid.UUID, fields map[string]any) (*types.Course, error)
	Delete(ctx context.Context, userID uuid.UUID, courseID uuid.UUID) error
}

type courseService struct {
	log        *logger.Logger
	courseRepo repos.CourseRepo
}

func NewCourseService(baseLog *logger.Logger, courseRepo repos.CourseRepo) CourseService {
	return &courseService{
		log:        baseLog.With("service", "CourseService"),
		courseRepo: courseRepo,
	}
}

func (cs *courseService) Create(ctx context.Context, userID uuid.UUID, input CreateCourseInput) (*types.Course, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, fmt.Errorf("%w: title and description are required", pkgerrors.ErrInvalidArgument)
	}
	if strings.TrimSpace(input.SystemPrompt) == "" {
		return nil, fmt.Errorf("%w: system prompt is required", pkgerrors.ErrInvalidArgument)
	}

	course := &types.Course{
		ID:                    uuid.New(),
		UserID:                userID,
		SubjectID:             input.SubjectID,
		GradeID:               input.GradeID,
		Title:                 input.Title,
		Description:           input.Description,
		GenerationPrompt:      input.GenerationPrompt,
		AdditionalInformation: input.AdditionalInformation,
		SystemPrompt:          input.SystemPrompt,
	}
	if _, err := cs.courseRepo.Create(ctx, nil, []*types.Course{course}); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	return course, nil
}

func (cs *courseService) GetUserCourses(ctx context.Context, userID uuid.UUID) ([]*types.Course, error) {
	return cs.courseRepo.GetByUserIDs(ctx, nil, []uuid.UUID{userID})
}

func (cs *courseService) GetByID(ctx context.Context, userID uuid.UUID, courseID uuid.UUID) (*types.Course, error) {
	courses, err := cs.courseRepo.GetByIDs(ctx, nil, []uuid.UUID{courseID})
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 || courses[0].UserID != userID {
		return nil, pkgerrors.ErrNotFound
	}
	return courses[0], nil
}

func (cs *courseService) Update(ctx context.Context, userID uuid.UUID, courseID uuid.UUID, fields map[string]any) (*types.Course, error) {
	if _, err := cs.GetByID(ctx, userID, courseID); err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return cs.GetByID(ctx, userID, courseID)
	}
	updated, err := cs.courseRepo.UpdateFields(ctx, nil, courseID, fields)
	if err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}
	return updated, nil
}

func (cs *courseService) Delete(ctx context.Context, userID uuid.UUID, courseID uuid.UUID) error {
	if _, err := cs.GetByID(ctx, userID, courseID); err != nil {
		return err
	}
	return cs.courseRepo.DeleteByIDs(ctx, nil, []uuid.UUID{courseID})
}
