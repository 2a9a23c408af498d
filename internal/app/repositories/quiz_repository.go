package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tullab/tullab/internal/app/models"
	"github.com/tullab/tullab/internal/pkg/apperrors"
	"github.com/tullab/tullab/internal/pkg/dberrors"
	"github.com/tullab/tullab/internal/pkg/helpers"
	"github.com/tullab/tullab/internal/pkg/logger"
)

// QuizRepository handles quiz database operations
type QuizRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewQuizRepository creates a new QuizRepository
func NewQuizRepository(db *pgxpool.Pool) *QuizRepository {
	return &QuizRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateQuiz inserts a new quiz and returns its assigned ID.
// The quiz link is unique across the board; inserting a duplicate
// returns ErrQuizAlreadyExists.
func (r *QuizRepository) CreateQuiz(ctx context.Context, quiz *models.Quiz) (int64, error) {
	sql, args, err := r.sb.Insert("quizzes").
		Columns("subject", "title", "url").
		Values(quiz.Subject, quiz.Title, quiz.URL).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create quiz SQL")
		return 0, fmt.Errorf("failed to build create quiz query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&quiz.ID, &quiz.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrQuizAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create quiz query")
		return 0, fmt.Errorf("error creating quiz: %w", err)
	}

	return quiz.ID, nil
}

// GetQuizByID retrieves a quiz by ID
func (r *QuizRepository) GetQuizByID(ctx context.Context, id int64) (*models.Quiz, error) {
	sql, args, err := r.sb.Select("id", "subject", "title", "url", "created_at").
		From("quizzes").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get quiz by ID SQL")
		return nil, fmt.Errorf("failed to build get quiz query: %w", err)
	}

	quiz := &models.Quiz{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&quiz.ID, &quiz.Subject, &quiz.Title, &quiz.URL, &quiz.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrQuizNotFound
		}
		logger.Error().Err(err).Int64("quizId", id).Msg("Error scanning quiz row")
		return nil, fmt.Errorf("error getting quiz by ID: %w", err)
	}

	return quiz, nil
}

// ListQuizzes retrieves quizzes with optional subject filtering and pagination
func (r *QuizRepository) ListQuizzes(ctx context.Context, subject *models.Subject, page, pageSize int) ([]models.Quiz, int64, error) {
	query := r.sb.Select("id", "subject", "title", "url", "created_at").
		From("quizzes").
		OrderBy("created_at DESC", "id DESC")

	if subject != nil {
		query = query.Where(squirrel.Eq{"subject": *subject})
	}

	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)
	query = query.Limit(uint64(limit)).Offset(offset)

	// Fetch the total row count alongside the page
	countQuery := query.Column("COUNT(*) OVER()")
	sql, args, err := countQuery.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list quizzes SQL")
		return nil, 0, fmt.Errorf("failed to build list quizzes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list quizzes query")
		return nil, 0, fmt.Errorf("error querying quizzes: %w", err)
	}
	defer rows.Close()

	quizzes := []models.Quiz{}
	var total int64

	for rows.Next() {
		quiz := models.Quiz{}
		if err := rows.Scan(&quiz.ID, &quiz.Subject, &quiz.Title, &quiz.URL, &quiz.CreatedAt, &total); err != nil {
			logger.Error().Err(err).Msg("Error scanning quiz row during list")
			return nil, 0, fmt.Errorf("error scanning quiz row: %w", err)
		}
		quizzes = append(quizzes, quiz)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating quiz rows")
		return nil, 0, fmt.Errorf("error iterating quiz rows: %w", err)
	}

	return quizzes, total, nil
}

// DeleteQuiz deletes a quiz by ID and reports whether a row was actually removed
func (r *QuizRepository) DeleteQuiz(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Delete("quizzes").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete quiz SQL")
		return false, fmt.Errorf("failed to build delete quiz query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("quizId", id).Msg("Error executing delete quiz query")
		return false, fmt.Errorf("error deleting quiz: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}
