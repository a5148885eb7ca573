package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	ID                    uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID                uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User                  *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	SubjectID             *uuid.UUID     `gorm:"type:uuid;index" json:"subject_id,omitempty"`
	Subject               *Subject       `gorm:"constraint:OnDelete:SET NULL;foreignKey:SubjectID;references:ID" json:"subject,omitempty"`
	GradeID               *uuid.UUID     `gorm:"type:uuid;index" json:"grade_id,omitempty"`
	Grade                 *Grade         `gorm:"constraint:OnDelete:SET NULL;foreignKey:GradeID;references:ID" json:"grade,omitempty"`
	Title                 string         `gorm:"column:title;not null" json:"title"`
	Description           string         `gorm:"column:description;not null" json:"description"`
	GenerationPrompt      string         `gorm:"column:generation_prompt" json:"generation_prompt"`
	AdditionalInformation string         `gorm:"column:additional_information" json:"additional_information"`
	SystemPrompt          string         `gorm:"column:system_prompt;not null" json:"system_prompt"`
	CreatedAt             time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Course) TableName() string { return "course" }
