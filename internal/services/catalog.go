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

// CatalogService covers the shared subject and grade reference data.
type CatalogService interface {
	CreateSubject(ctx context.Context, title, systemPrompt string) (*types.Subject, error)
	ListSubjects(ctx context.Context) ([]*types.Subject, error)
	CreateGrade(ctx context.Context, title, systemPrompt string) (*types.Grade, error)
	ListGrades(ctx context.Context) ([]*types.Grade, error)
}

type catalogService struct {
	log         *logger.Logger
	subjectRepo repos.SubjectRepo
	gradeRepo   repos.GradeRepo
}

func NewCatalogService(baseLog *logger.Logger, subjectRepo repos.SubjectRepo, gradeRepo repos.GradeRepo) CatalogService {
	return &catalogService{
		log:         baseLog.With("service", "CatalogService"),
		subjectRepo: subjectRepo,
		gradeRepo:   gradeRepo,
	}
}

func (cs *catalogService) CreateSubject(ctx context.Context, title, systemPrompt string) (*types.Subject, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(systemPrompt) == "" {
		return nil, fmt.Errorf("%w: title and system prompt are required", pkgerrors.ErrInvalidArgument)
	}
	subject := &types.Subject{ID: uuid.New(), Title: title, SystemPrompt: systemPrompt}
	if _, err := cs.subjectRepo.Create(ctx, nil, []*types.Subject{subject}); err != nil {
		return nil, fmt.Errorf("create subject: %w", err)
	}
	return subject, nil
}

func (cs *catalogService) ListSubjects(ctx context.Context) ([]*types.Subject, error) {
	return cs.subjectRepo.GetAll(ctx, nil)
}

func (cs *catalogService) CreateGrade(ctx context.Context, title, systemPrompt string) (*types.Grade, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(systemPrompt) == "" {
		return nil, fmt.Errorf("%w: title and system prompt are required", pkgerrors.ErrInvalidArgument)
	}
	grade := &types.Grade{ID: uuid.New(), Title: title, SystemPrompt: systemPrompt}
	if _, err := cs.gradeRepo.Create(ctx, nil, []*types.Grade{grade}); err != nil {
		return nil, fmt.Errorf("create grade: %w", err)
	}
	return grade, nil
}

func (cs *catalogService) ListGrades(ctx context.Context) ([]*types.Grade, error) {
	return cs.gradeRepo.GetAll(ctx, nil)
}
