package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/educraft-backend/internal/logger"
	pkgerrors "github.com/yungbote/educraft-backend/internal/pkg/errors"
	"github.com/yungbote/educraft-backend/internal/repos"
	"github.com/yungbote/educraft-backend/internal/types"
)

type CreateAssignmentInput struct {
	Title                         string
	CourseID                      *uuid.UUID
	AssignmentCategoryID          uuid.UUID
	DueDate                       time.Time
	Description                   string
	LearningObjectivesDescription string
	Canvas                        bool
	Google                        bool
	GoogleMeet                    bool
}

type UpdateAssignmentInput struct {
	Title                         *string
	CourseID                      *uuid.UUID
	AssignmentCategoryID          *uuid.UUID
	DueDate                       *time.Time
	Description                   *string
	LearningObjectivesDescription *string
	Canvas                        *bool
	Google                        *bool
	GoogleMeet                    *bool
	SystemPrompt                  *string
}

type AssignmentService interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateAssignmentInput) (*types.Assignment, error)
	GetUserAssignments(ctx context.Context, userID uuid.UUID) ([]*types.Assignment, error)
	GetByID(ctx context.Context, userID uuid.UUID, assignmentID uuid.UUID) (*types.Assignment, error)
	Update(ctx context.Context, userID uuid.UUID, assignmentID uuid.UUID, input UpdateAssignmentInput) (*types.Assignment, error)
	Delete(ctx context.Context, userID uuid.UUID, assignmentID uuid.UUID) error
}

type assignmentService struct {
	db             *gorm.DB
	log            *logger.Logger
	assignmentRepo repos.AssignmentRepo
	promptService  AssignmentPromptService
}

func NewAssignmentService(
	db *gorm.DB,
	baseLog *logger.Logger,
	assignmentRepo repos.AssignmentRepo,
	promptService AssignmentPromptService,
) AssignmentService {
	return &assignmentService{
		db:             db,
		log:            baseLog.With("service", "AssignmentService"),
		assignmentRepo: assignmentRepo,
		promptService:  promptService,
	}
}

// Create generates the assignment's system prompt first and persists only
// when the validated payload is in hand. A failed generation leaves no
// assignment row behind.
func (as *assignmentService) Create(ctx context.Context, userID uuid.UUID, input CreateAssignmentInput) (*types.Assignment, error) {
	if input.DueDate.IsZero() {
		return nil, fmt.Errorf("%w: due date is required", pkgerrors.ErrInvalidArgument)
	}

	prompt, err := as.promptService.GenerateSystemPrompt(ctx, GenerateAssignmentPromptInput{
		Title:                         input.Title,
		Description:                   input.Description,
		LearningObjectivesDescription: input.LearningObjectivesDescription,
		CourseID:                      input.CourseID,
		AssignmentCategoryID:          input.AssignmentCategoryID,
	})
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(prompt)
	if err != nil {
		return nil, fmt.Errorf("serialize system prompt: %w", err)
	}

	assignment := &types.Assignment{
		ID:                            uuid.New(),
		UserID:                        userID,
		CourseID:                      input.CourseID,
		AssignmentCategoryID:          input.AssignmentCategoryID,
		Title:                         input.Title,
		DueDate:                       input.DueDate,
		Description:                   input.Description,
		LearningObjectivesDescription: input.LearningObjectivesDescription,
		Canvas:                        input.Canvas,
		Google:                        input.Google,
		GoogleMeet:                    input.GoogleMeet,
		TotalPoints:                   100,
		SystemPrompt:                  datatypes.JSON(payload),
	}

	if _, err := as.assignmentRepo.Create(ctx, nil, []*types.Assignment{assignment}); err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}

	return assignment, nil
}

func (as *assignmentService) GetUserAssignments(ctx context.Context, userID uuid.UUID) ([]*types.Assignment, error) {
	return as.assignmentRepo.GetByUserIDs(ctx, nil, []uuid.UUID{userID})
}

func (as *assignmentService) GetByID(ctx context.Context, userID uuid.UUID, assignmentID uuid.UUID) (*types.Assignment, error) {
	assignments, err := as.assignmentRepo.GetByIDs(ctx, nil, []uuid.UUID{assignmentID})
	if err != nil {
		return nil, err
	}
	if len(assignments) == 0 || assignments[0].UserID != userID {
		return nil, pkgerrors.ErrNotFound
	}
	return assignments[0], nil
}

func (as *assignmentService) Update(ctx context.Context, userID uuid.UUID, assignmentID uuid.UUID, input UpdateAssignmentInput) (*types.Assignment, error) {
	if _, err := as.GetByID(ctx, userID, assignmentID); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.CourseID != nil {
		fields["course_id"] = *input.CourseID
	}
	if input.AssignmentCategoryID != nil {
		fields["assignment_category_id"] = *input.AssignmentCategoryID
	}
	if input.DueDate != nil {
		fields["due_date"] = *input.DueDate
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.LearningObjectivesDescription != nil {
		fields["learning_objectives_description"] = *input.LearningObjectivesDescription
	}
	if input.Canvas != nil {
		fields["canvas"] = *input.Canvas
	}
	if input.Google != nil {
		fields["google"] = *input.Google
	}
	if input.GoogleMeet != nil {
		fields["google_meet"] = *input.GoogleMeet
	}
	if input.SystemPrompt != nil {
		// Manual payload edits must still be the serialized two-field value.
		if _, err := parseAssignmentSystemPrompt(*input.SystemPrompt); err != nil {
			return nil, fmt.Errorf("%w: system prompt must be a valid serialized payload", pkgerrors.ErrInvalidArgument)
		}
		fields["system_prompt"] = datatypes.JSON(*input.SystemPrompt)
	}

	if len(fields) == 0 {
		return as.GetByID(ctx, userID, assignmentID)
	}

	updated, err := as.assignmentRepo.UpdateFields(ctx, nil, assignmentID, fields)
	if err != nil {
		return nil, fmt.Errorf("update assignment: %w", err)
	}

	return updated, nil
}

func (as *assignmentService) Delete(ctx context.Context, userID uuid.UUID, assignmentID uuid.UUID) error {
	if _, err := as.GetByID(ctx, userID, assignmentID); err != nil {
		return err
	}
	return as.assignmentRepo.DeleteByIDs(ctx, nil, []uuid.UUID{assignmentID})
}
