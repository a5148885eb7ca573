package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/educraft-backend/internal/logger"
	"github.com/yungbote/educraft-backend/internal/repos"
)

type Repos struct {
	User                  repos.UserRepo
	Subject               repos.SubjectRepo
	Grade                 repos.GradeRepo
	Course                repos.CourseRepo
	AssignmentCategory    repos.AssignmentCategoryRepo
	AssignmentSubCategory repos.AssignmentSubCategoryRepo
	Assignment            repos.AssignmentRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:                  repos.NewUserRepo(db, log),
		Subject:               repos.NewSubjectRepo(db, log),
		Grade:                 repos.NewGradeRepo(db, log),
		Course:                repos.NewCourseRepo(db, log),
		AssignmentCategory:    repos.NewAssignmentCategoryRepo(db, log),
		AssignmentSubCategory: repos.NewAssignmentSubCategoryRepo(db, log),
		Assignment:            repos.NewAssignmentRepo(db, log),
	}
}
