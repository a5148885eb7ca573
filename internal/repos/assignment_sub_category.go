package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/educraft-backend/internal/logger"
	"github.com/yungbote/educraft-backend/internal/types"
)

type AssignmentSubCategoryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, subCategories []*types.AssignmentSubCategory) ([]*types.AssignmentSubCategory, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, subCategoryIDs []uuid.UUID) ([]*types.AssignmentSubCategory, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.AssignmentSubCategory, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, subCategoryID uuid.UUID, fields map[string]any) (*types.AssignmentSubCategory, error)
	DeleteByIDs(ctx context.Context, tx *gorm.DB, subCategoryIDs []uuid.UUID) error
}

type assignmentSubCategoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssignmentSubCategoryRepo(db *gorm.DB, baseLog *logger.Logger) AssignmentSubCategoryRepo {
	return &assignmentSubCategoryRepo{db: db, log: baseLog.With("repo", "AssignmentSubCategoryRepo")}
}

func (ar *assignmentSubCategoryRepo) Create(ctx context.Context, tx *gorm.DB, subCategories []*types.AssignmentSubCategory) ([]*types.AssignmentSubCategory, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if len(subCategories) == 0 {
		return []*types.AssignmentSubCategory{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&subCategories).Error; err != nil {
		return nil, err
	}

	return subCategories, nil
}

func (ar *assignmentSubCategoryRepo) GetByIDs(ctx context.Context, tx *gorm.DB, subCategoryIDs []uuid.UUID) ([]*types.AssignmentSubCategory, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.AssignmentSubCategory

	if len(subCategoryIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", subCategoryIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

func (ar *assignmentSubCategoryRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.AssignmentSubCategory, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.AssignmentSubCategory

	if err := transaction.WithContext(ctx).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

func (ar *assignmentSubCategoryRepo) UpdateFields(ctx context.Context, tx *gorm.DB, subCategoryID uuid.UUID, fields map[string]any) (*types.AssignmentSubCategory, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if err := transaction.WithContext(ctx).
		Model(&types.AssignmentSubCategory{}).
		Where("id = ?", subCategoryID).
		Updates(fields).Error; err != nil {
		return nil, err
	}

	var updated types.AssignmentSubCategory
	if err := transaction.WithContext(ctx).
		Where("id = ?", subCategoryID).
		First(&updated).Error; err != nil {
		return nil, err
	}

	return &updated, nil
}

func (ar *assignmentSubCategoryRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, subCategoryIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if len(subCategoryIDs) == 0 {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", subCategoryIDs).
		Delete(&types.AssignmentSubCategory{}).Error; err != nil {
		return err
	}

	return nil
}
