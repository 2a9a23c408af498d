package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/tullab/tullab/internal/app/models"
	"github.com/tullab/tullab/internal/app/repositories"
	"github.com/tullab/tullab/internal/pkg/apperrors"
)

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	CreateQuiz(ctx context.Context, quiz *models.Quiz) (int64, error)
	GetQuizByID(ctx context.Context, id int64) (*models.Quiz, error)
	ListQuizzes(ctx context.Context, subject *models.Subject, page, pageSize int) ([]models.Quiz, int64, error)
	DeleteQuiz(ctx context.Context, id int64) error
}

// quizServiceImpl implements the QuizService interface
type quizServiceImpl struct {
	quizRepo *repositories.QuizRepository
}

// NewQuizService creates a new quiz service instance
func NewQuizService(quizRepo *repositories.QuizRepository) QuizService {
	return &quizServiceImpl{
		quizRepo: quizRepo,
	}
}

// validateQuiz validates quiz data before database operations
func validateQuiz(quiz *models.Quiz) error {
	if quiz == nil {
		return fmt.Errorf("%w: quiz is nil", apperrors.ErrValidationFailed)
	}

	if !quiz.Subject.IsValid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidSubject, quiz.Subject)
	}

	if strings.TrimSpace(quiz.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	parsed, err := url.Parse(quiz.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%w: url must be absolute", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateQuiz creates a new quiz link
func (s *quizServiceImpl) CreateQuiz(ctx context.Context, quiz *models.Quiz) (int64, error) {
	if err := validateQuiz(quiz); err != nil {
		return 0, err
	}

	id, err := s.quizRepo.CreateQuiz(ctx, quiz)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetQuizByID retrieves a quiz by ID
func (s *quizServiceImpl) GetQuizByID(ctx context.Context, id int64) (*models.Quiz, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid quiz ID", apperrors.ErrValidationFailed)
	}
	return s.quizRepo.GetQuizByID(ctx, id)
}

// ListQuizzes retrieves quizzes with optional subject filtering and pagination
func (s *quizServiceImpl) ListQuizzes(ctx context.Context, subject *models.Subject, page, pageSize int) ([]models.Quiz, int64, error) {
	if subject != nil && !subject.IsValid() {
		return nil, 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidSubject, *subject)
	}
	return s.quizRepo.ListQuizzes(ctx, subject, page, pageSize)
}

// DeleteQuiz removes a quiz by ID
func (s *quizServiceImpl) DeleteQuiz(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid quiz ID", apperrors.ErrValidationFailed)
	}

	removed, err := s.quizRepo.DeleteQuiz(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting quiz: %w", err)
	}
	if !removed {
		return apperrors.ErrQuizNotFound
	}
	return nil
}
