package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/educraft-backend/internal/logger"
	"github.com/yungbote/educraft-backend/internal/types"
)

type GradeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, grades []*types.Grade) ([]*types.Grade, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, gradeIDs []uuid.UUID) ([]*types.Grade, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Grade, error)
}

type gradeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGradeRepo(db *gorm.DB, baseLog *logger.Logger) GradeRepo {
	return &gradeRepo{db: db, log: baseLog.With("repo", "GradeRepo")}
}

func (gr *gradeRepo) Create(ctx context.Context, tx *gorm.DB, grades []*types.Grade) ([]*types.Grade, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	if len(grades) == 0 {
		return []*types.Grade{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&grades).Error; err != nil {
		return nil, err
	}

	return grades, nil
}

func (gr *gradeRepo) GetByIDs(ctx context.Context, tx *gorm.DB, gradeIDs []uuid.UUID) ([]*types.Grade, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	var results []*types.Grade

	if len(gradeIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", gradeIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

func (gr *gradeRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Grade, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	var results []*types.Grade

	if err := transaction.WithContext(ctx).
		Order("title ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}
