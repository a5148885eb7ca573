package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/educraft-backend/internal/ai"
	"github.com/yungbote/educraft-backend/internal/logger"
	pkgerrors "github.com/yungbote/educraft-backend/internal/pkg/errors"
	"github.com/yungbote/educraft-backend/internal/repos"
	"github.com/yungbote/educraft-backend/internal/types"
)

var (
	// ErrCategoryNotFound means the assignment category reference did not
	// resolve. Surfaced before any backend call.
	ErrCategoryNotFound = errors.New("assignment category not found")
	// ErrGenerationTimeout means the generate step exceeded its configured
	// bound. Distinct from a backend failure so callers can tell "the model
	// never answered" from "the model answered badly".
	ErrGenerationTimeout = errors.New("generation timed out")
)

type GenerateAssignmentPromptInput struct {
	Title                         string
	Description                   string
	LearningObjectivesDescription string
	CourseID                      *uuid.UUID
	AssignmentCategoryID          uuid.UUID
}

// AssignmentPromptConfig is injected, never read from package globals, so
// tests can substitute a stub runner and model type.
type AssignmentPromptConfig struct {
	ModelType       ai.ModelType
	GenerateTimeout time.Duration
}

// AssignmentPromptService runs the generation pipeline:
// resolve -> compose -> generate -> validate. Persistence stays with the
// caller, which must never store a malformed or missing payload.
type AssignmentPromptService interface {
	GenerateSystemPrompt(ctx context.Context, input GenerateAssignmentPromptInput) (*types.AssignmentSystemPrompt, error)
}

type assignmentPromptService struct {
	log          *logger.Logger
	cfg          AssignmentPromptConfig
	runner       ai.Runner
	courseRepo   repos.CourseRepo
	categoryRepo repos.AssignmentCategoryRepo
}

func NewAssignmentPromptService(
	baseLog *logger.Logger,
	cfg AssignmentPromptConfig,
	runner ai.Runner,
	courseRepo repos.CourseRepo,
	categoryRepo repos.AssignmentCategoryRepo,
) AssignmentPromptService {
	return &assignmentPromptService{
		log:          baseLog.With("service", "AssignmentPromptService"),
		cfg:          cfg,
		runner:       runner,
		courseRepo:   courseRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *assignmentPromptService) GenerateSystemPrompt(ctx context.Context, input GenerateAssignmentPromptInput) (*types.AssignmentSystemPrompt, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", pkgerrors.ErrInvalidArgument)
	}
	if input.AssignmentCategoryID == uuid.Nil {
		return nil, fmt.Errorf("%w: assignment category id is required", pkgerrors.ErrInvalidArgument)
	}

	// Category is mandatory context: fail before spending a backend call.
	category, err := s.categoryRepo.GetByIDWithSubCategories(ctx, nil, input.AssignmentCategoryID)
	if err != nil {
		return nil, fmt.Errorf("load assignment category: %w", err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	// Course is optional enrichment: an unresolved reference degrades to the
	// no-course placeholder instead of failing the pipeline.
	var course *types.Course
	if input.CourseID != nil {
		courses, err := s.courseRepo.GetByIDs(ctx, nil, []uuid.UUID{*input.CourseID})
		if err != nil {
			return nil, fmt.Errorf("load course: %w", err)
		}
		if len(courses) > 0 {
			course = courses[0]
		} else {
			s.log.Warn("Course reference did not resolve, proceeding without course context", "course_id", *input.CourseID)
		}
	}

	messages := composeAssignmentPromptMessages(input, course, category)

	genCtx := ctx
	if s.cfg.GenerateTimeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, s.cfg.GenerateTimeout)
		defer cancel()
	}

	raw, err := s.runner.Run(genCtx, s.cfg.ModelType, messages)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, fmt.Errorf("%w after %s", ErrGenerationTimeout, s.cfg.GenerateTimeout)
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}

	parsed, err := parseAssignmentSystemPrompt(raw)
	if err != nil {
		s.log.Error("Rejected model reply", "error", err, "raw", raw)
		return nil, err
	}

	return parsed, nil
}
