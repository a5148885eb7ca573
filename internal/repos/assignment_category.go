package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/educraft-backend/internal/logger"
	"github.com/yungbote/educraft-backend/internal/types"
)

type AssignmentCategoryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, categories []*types.AssignmentCategory) ([]*types.AssignmentCategory, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, categoryIDs []uuid.UUID) ([]*types.AssignmentCategory, error)
	GetByIDWithSubCategories(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) (*types.AssignmentCategory, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.AssignmentCategory, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID, fields map[string]any) (*types.AssignmentCategory, error)
	ReplaceSubCategories(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID, subCategoryIDs []uuid.UUID) error
	DeleteByIDs(ctx context.Context, tx *gorm.DB, categoryIDs []uuid.UUID) error
}

type assignmentCategoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssignmentCategoryRepo(db *gorm.DB, baseLog *logger.Logger) AssignmentCategoryRepo {
	return &assignmentCategoryRepo{db: db, log: baseLog.With("repo", "AssignmentCategoryRepo")}
}

func (ar *assignmentCategoryRepo) Create(ctx context.Context, tx *gorm.DB, categories []*types.AssignmentCategory) ([]*types.AssignmentCategory, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if len(categories) == 0 {
		return []*types.AssignmentCategory{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&categories).Error; err != nil {
		return nil, err
	}

	return categories, nil
}

func (ar *assignmentCategoryRepo) GetByIDs(ctx context.Context, tx *gorm.DB, categoryIDs []uuid.UUID) ([]*types.AssignmentCategory, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.AssignmentCategory

	if len(categoryIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", categoryIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

// GetByIDWithSubCategories returns nil (no error) when the category does not
// exist. Sub-categories come back in join-table position order, which is the
// order authors arranged them in.
func (ar *assignmentCategoryRepo) GetByIDWithSubCategories(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) (*types.AssignmentCategory, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var categories []*types.AssignmentCategory
	if err := transaction.WithContext(ctx).
		Where("id = ?", categoryID).
		Find(&categories).Error; err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, nil
	}
	category := categories[0]

	var subCategories []*types.AssignmentSubCategory
	if err := transaction.WithContext(ctx).
		Model(&types.AssignmentSubCategory{}).
		Joins("JOIN assignment_category_sub_category acs ON acs.sub_category_id = assignment_sub_category.id").
		Where("acs.category_id = ?", categoryID).
		Order("acs.position ASC").
		Find(&subCategories).Error; err != nil {
		return nil, err
	}
	category.SubCategories = subCategories

	return category, nil
}

func (ar *assignmentCategoryRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.AssignmentCategory, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.AssignmentCategory

	if err := transaction.WithContext(ctx).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

func (ar *assignmentCategoryRepo) UpdateFields(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID, fields map[string]any) (*types.AssignmentCategory, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if err := transaction.WithContext(ctx).
		Model(&types.AssignmentCategory{}).
		Where("id = ?", categoryID).
		Updates(fields).Error; err != nil {
		return nil, err
	}

	var updated types.AssignmentCategory
	if err := transaction.WithContext(ctx).
		Where("id = ?", categoryID).
		First(&updated).Error; err != nil {
		return nil, err
	}

	return &updated, nil
}

// ReplaceSubCategories rewrites the category's ordered sub-category list.
// Positions are assigned from the slice order.
func (ar *assignmentCategoryRepo) ReplaceSubCategories(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID, subCategoryIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if err := transaction.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Delete(&types.AssignmentCategorySubCategory{}).Error; err != nil {
		return err
	}

	if len(subCategoryIDs) == 0 {
		return nil
	}

	links := make([]*types.AssignmentCategorySubCategory, 0, len(subCategoryIDs))
	for i, subID := range subCategoryIDs {
		links = append(links, &types.AssignmentCategorySubCategory{
			CategoryID:    categoryID,
			SubCategoryID: subID,
			Position:      i,
		})
	}

	if err := transaction.WithContext(ctx).Create(&links).Error; err != nil {
		return err
	}

	return nil
}

func (ar *assignmentCategoryRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, categoryIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if len(categoryIDs) == 0 {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Where("category_id IN ?", categoryIDs).
		Delete(&types.AssignmentCategorySubCategory{}).Error; err != nil {
		return err
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", categoryIDs).
		Delete(&types.AssignmentCategory{}).Error; err != nil {
		return err
	}

	return nil
}
