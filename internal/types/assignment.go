package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Assignment struct {
	ID                            uuid.UUID           `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID                        uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	User                          *User               `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	CourseID                      *uuid.UUID          `gorm:"type:uuid;index" json:"course_id,omitempty"`
	Course                        *Course             `gorm:"constraint:OnDelete:SET NULL;foreignKey:CourseID;references:ID" json:"course,omitempty"`
	AssignmentCategoryID          uuid.UUID           `gorm:"type:uuid;not null;index" json:"assignment_category_id"`
	AssignmentCategory            *AssignmentCategory `gorm:"constraint:OnDelete:RESTRICT;foreignKey:AssignmentCategoryID;references:ID" json:"assignment_category,omitempty"`
	Title                         string              `gorm:"column:title;not null" json:"title"`
	DueDate                       time.Time           `gorm:"column:due_date;not null;index" json:"due_date"`
	Description                   string              `gorm:"column:description" json:"description"`
	LearningObjectivesDescription string              `gorm:"column:learning_objectives_description" json:"learning_objectives_description"`
	Canvas                        bool                `gorm:"column:canvas;not null;default:false" json:"canvas"`
	Google                        bool                `gorm:"column:google;not null;default:false" json:"google"`
	GoogleMeet                    bool                `gorm:"column:google_meet;not null;default:false" json:"google_meet"`
	TotalPoints                   int                 `gorm:"column:total_points;not null;default:100" json:"total_points"`
	SystemPrompt                  datatypes.JSON      `gorm:"column:system_prompt;type:jsonb;not null" json:"system_prompt"`
	CreatedAt                     time.Time           `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt                     time.Time           `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt                     gorm.DeletedAt      `gorm:"index" json:"deleted_at,omitempty"`
}

func (Assignment) TableName() string { return "assignment" }

// AssignmentSystemPrompt is the generated payload stored on an Assignment.
// Both fields are markdown meant for direct rendering.
type AssignmentSystemPrompt struct {
	Instructions string `json:"instructions"`
	Rubric       string `json:"rubric"`
}
