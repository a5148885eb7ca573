package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentCategory struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title     string         `gorm:"column:title;not null" json:"title"`
	SubTitle  string         `gorm:"column:sub_title" json:"sub_title"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// SubCategories is populated by the repo in stored order (join-table
	// position), not by a gorm association.
	SubCategories []*AssignmentSubCategory `gorm:"-" json:"sub_categories,omitempty"`
}

func (AssignmentCategory) TableName() string { return "assignment_category" }

// AssignmentCategorySubCategory links a category to its sub-categories.
// Position preserves the author's ordering of sub-category instructions.
type AssignmentCategorySubCategory struct {
	CategoryID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"category_id"`
	SubCategoryID uuid.UUID `gorm:"type:uuid;primaryKey" json:"sub_category_id"`
	Position      int       `gorm:"column:position;not null" json:"position"`
}

func (AssignmentCategorySubCategory) TableName() string {
	return "assignment_category_sub_category"
}
