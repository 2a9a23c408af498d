package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	ExamRepository      *ExamRepository
	StudyFileRepository *StudyFileRepository
	QuizRepository      *QuizRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ExamRepository:      NewExamRepository(db),
		StudyFileRepository: NewStudyFileRepository(db),
		QuizRepository:      NewQuizRepository(db),
	}
}
