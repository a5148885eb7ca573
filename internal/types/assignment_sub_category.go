package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentSubCategory struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title        string         `gorm:"column:title;not null" json:"title"`
	Description  string         `gorm:"column:description" json:"description"`
	SystemPrompt string         `gorm:"column:system_prompt" json:"system_prompt"`
	CreatedAt    time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (AssignmentSubCategory) TableName() string { return "assignment_sub_category" }
