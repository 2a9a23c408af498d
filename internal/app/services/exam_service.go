package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tullab/tullab/internal/app/models"
	"github.com/tullab/tullab/internal/app/repositories"
	"github.com/tullab/tullab/internal/pkg/apperrors"
	"github.com/tullab/tullab/internal/pkg/dates"
)

// ExamService defines the interface for exam-related operations
type ExamService interface {
	CreateExam(ctx context.Context, exam *models.Exam) (int64, error)
	GetExamByID(ctx context.Context, id int64) (*models.Exam, error)
	ListExams(ctx context.Context, subject *models.Subject) ([]models.Exam, error)
	DeleteExam(ctx context.Context, id int64) error
}

// examServiceImpl implements the ExamService interface
type examServiceImpl struct {
	examRepo *repositories.ExamRepository
}

// NewExamService creates a new exam service instance
func NewExamService(examRepo *repositories.ExamRepository) ExamService {
	return &examServiceImpl{
		examRepo: examRepo,
	}
}

// validateExam validates exam data before database operations
func validateExam(exam *models.Exam) error {
	if exam == nil {
		return fmt.Errorf("%w: exam is nil", apperrors.ErrValidationFailed)
	}

	if !exam.Subject.IsValid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidSubject, exam.Subject)
	}

	// The date must be a real calendar day; nothing malformed may be stored
	if _, err := dates.ParseDate(exam.Date); err != nil {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidExamDate, exam.Date)
	}

	if len(exam.Topics) == 0 {
		return fmt.Errorf("%w: at least one topic is required", apperrors.ErrValidationFailed)
	}
	for _, topic := range exam.Topics {
		if strings.TrimSpace(topic) == "" {
			return fmt.Errorf("%w: topics cannot be blank", apperrors.ErrValidationFailed)
		}
	}

	return nil
}

// CreateExam creates a new exam
func (s *examServiceImpl) CreateExam(ctx context.Context, exam *models.Exam) (int64, error) {
	if err := validateExam(exam); err != nil {
		return 0, err
	}

	id, err := s.examRepo.CreateExam(ctx, exam)
	if err != nil {
		return 0, fmt.Errorf("error creating exam: %w", err)
	}
	return id, nil
}

// GetExamByID retrieves an exam by ID
func (s *examServiceImpl) GetExamByID(ctx context.Context, id int64) (*models.Exam, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid exam ID", apperrors.ErrValidationFailed)
	}

	exam, err := s.examRepo.GetExamByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return exam, nil
}

// ListExams retrieves all exams, optionally filtered by subject
func (s *examServiceImpl) ListExams(ctx context.Context, subject *models.Subject) ([]models.Exam, error) {
	if subject != nil {
		if !subject.IsValid() {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidSubject, *subject)
		}
		return s.examRepo.ListExamsBySubject(ctx, *subject)
	}
	return s.examRepo.ListExams(ctx)
}

// DeleteExam removes an exam by ID
func (s *examServiceImpl) DeleteExam(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid exam ID", apperrors.ErrValidationFailed)
	}

	removed, err := s.examRepo.DeleteExam(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting exam: %w", err)
	}
	if !removed {
		return apperrors.ErrExamNotFound
	}
	return nil
}
