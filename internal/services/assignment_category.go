package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/educraft-backend/internal/logger"
	pkgerrors "github.com/yungbote/educraft-backend/internal/pkg/errors"
	"github.com/yungbote/educraft-backend/internal/repos"
	"github.com/yungbote/educraft-backend/internal/types"
)

type CreateAssignmentCategoryInput struct {
	Title          string
	SubTitle       string
	SubCategoryIDs []uuid.UUID
}

type AssignmentCategoryService interface {
	CreateCategory(ctx context.Context, input CreateAssignmentCategoryInput) (*types.AssignmentCategory, error)
	GetCategory(ctx context.Context, categoryID uuid.UUID) (*types.AssignmentCategory, error)
	ListCategories(ctx context.Context) ([]*types.AssignmentCategory, error)
	UpdateCategory(ctx context.Context, categoryID uuid.UUID, fields map[string]any, subCategoryIDs []uuid.UUID) (*types.AssignmentCategory, error)
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error

	CreateSubCategory(ctx context.Context, title, description, systemPrompt string) (*types.AssignmentSubCategory, error)
	ListSubCategories(ctx context.Context) ([]*types.AssignmentSubCategory, error)
	UpdateSubCategory(ctx context.Context, subCategoryID uuid.UUID, fields map[string]any) (*types.AssignmentSubCategory, error)
	DeleteSubCategory(ctx context.Context, subCategoryID uuid.UUID) error
}

type assignmentCategoryService struct {
	db           *gorm.DB
	log          *logger.Logger
	categoryRepo repos.AssignmentCategoryRepo
	subRepo      repos.AssignmentSubCategoryRepo
}

func NewAssignmentCategoryService(
	db *gorm.DB,
	baseLog *logger.Logger,
	categoryRepo repos.AssignmentCategoryRepo,
	subRepo repos.AssignmentSubCategoryRepo,
) AssignmentCategoryService {
	return &assignmentCategoryService{
		db:           db,
		log:          baseLog.With("service", "AssignmentCategoryService"),
		categoryRepo: categoryRepo,
		subRepo:      subRepo,
	}
}

// verifySubCategoryIDs confirms every referenced sub-category exists before
// the ordered list is written.
func (acs *assignmentCategoryService) verifySubCategoryIDs(ctx context.Context, tx *gorm.DB, subCategoryIDs []uuid.UUID) error {
	if len(subCategoryIDs) == 0 {
		return nil
	}
	found, err := acs.subRepo.GetByIDs(ctx, tx, subCategoryIDs)
	if err != nil {
		return fmt.Errorf("load sub-categories: %w", err)
	}
	existing := make(map[uuid.UUID]bool, len(found))
	for _, sc := range found {
		existing[sc.ID] = true
	}
	for _, id := range subCategoryIDs {
		if !existing[id] {
			return fmt.Errorf("%w: sub-category %s does not exist", pkgerrors.ErrInvalidArgument, id)
		}
	}
	return nil
}

func (acs *assignmentCategoryService) CreateCategory(ctx context.Context, input CreateAssignmentCategoryInput) (*types.AssignmentCategory, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", pkgerrors.ErrInvalidArgument)
	}

	category := &types.AssignmentCategory{
		ID:       uuid.New(),
		Title:    input.Title,
		SubTitle: input.SubTitle,
	}

	err := acs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := acs.verifySubCategoryIDs(ctx, tx, input.SubCategoryIDs); err != nil {
			return err
		}
		if _, err := acs.categoryRepo.Create(ctx, tx, []*types.AssignmentCategory{category}); err != nil {
			return fmt.Errorf("create category: %w", err)
		}
		if err := acs.categoryRepo.ReplaceSubCategories(ctx, tx, category.ID, input.SubCategoryIDs); err != nil {
			return fmt.Errorf("link sub-categories: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return acs.GetCategory(ctx, category.ID)
}

func (acs *assignmentCategoryService) GetCategory(ctx context.Context, categoryID uuid.UUID) (*types.AssignmentCategory, error) {
	category, err := acs.categoryRepo.GetByIDWithSubCategories(ctx, nil, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, pkgerrors.ErrNotFound
	}
	return category, nil
}

func (acs *assignmentCategoryService) ListCategories(ctx context.Context) ([]*types.AssignmentCategory, error) {
	return acs.categoryRepo.GetAll(ctx, nil)
}

func (acs *assignmentCategoryService) UpdateCategory(ctx context.Context, categoryID uuid.UUID, fields map[string]any, subCategoryIDs []uuid.UUID) (*types.AssignmentCategory, error) {
	if _, err := acs.GetCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	err := acs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			if _, err := acs.categoryRepo.UpdateFields(ctx, tx, categoryID, fields); err != nil {
				return fmt.Errorf("update category: %w", err)
			}
		}
		if subCategoryIDs != nil {
			if err := acs.verifySubCategoryIDs(ctx, tx, subCategoryIDs); err != nil {
				return err
			}
			if err := acs.categoryRepo.ReplaceSubCategories(ctx, tx, categoryID, subCategoryIDs); err != nil {
				return fmt.Errorf("relink sub-categories: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return acs.GetCategory(ctx, categoryID)
}

func (acs *assignmentCategoryService) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	if _, err := acs.GetCategory(ctx, categoryID); err != nil {
		return err
	}
	return acs.categoryRepo.DeleteByIDs(ctx, nil, []uuid.UUID{categoryID})
}

func (acs *assignmentCategoryService) CreateSubCategory(ctx context.Context, title, description, systemPrompt string) (*types.AssignmentSubCategory, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", pkgerrors.ErrInvalidArgument)
	}
	subCategory := &types.AssignmentSubCategory{
		ID:           uuid.New(),
		Title:        title,
		Description:  description,
		SystemPrompt: systemPrompt,
	}
	if _, err := acs.subRepo.Create(ctx, nil, []*types.AssignmentSubCategory{subCategory}); err != nil {
		return nil, fmt.Errorf("create sub-category: %w", err)
	}
	return subCategory, nil
}

func (acs *assignmentCategoryService) ListSubCategories(ctx context.Context) ([]*types.AssignmentSubCategory, error) {
	return acs.subRepo.GetAll(ctx, nil)
}

func (acs *assignmentCategoryService) UpdateSubCategory(ctx context.Context, subCategoryID uuid.UUID, fields map[string]any) (*types.AssignmentSubCategory, error) {
	existing, err := acs.subRepo.GetByIDs(ctx, nil, []uuid.UUID{subCategoryID})
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		return nil, pkgerrors.ErrNotFound
	}
	if len(fields) == 0 {
		return existing[0], nil
	}
	updated, err := acs.subRepo.UpdateFields(ctx, nil, subCategoryID, fields)
	if err != nil {
		return nil, fmt.Errorf("update sub-category: %w", err)
	}
	return updated, nil
}

func (acs *assignmentCategoryService) DeleteSubCategory(ctx context.Context, subCategoryID uuid.UUID) error {
	existing, err := acs.subRepo.GetByIDs(ctx, nil, []uuid.UUID{subCategoryID})
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		return pkgerrors.ErrNotFound
	}
	return acs.subRepo.DeleteByIDs(ctx, nil, []uuid.UUID{subCategoryID})
}
