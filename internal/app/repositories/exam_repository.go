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
	"github.com/tullab/tullab/internal/pkg/logger"
)

// ExamRepository handles exam database operations
type ExamRepository struct {
	db *pgxpool.Pool
	// Use squirrel instance with placeholder format
	sb squirrel.StatementBuilderType
}

// NewExamRepository creates a new ExamRepository
func NewExamRepository(db *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateExam inserts a new exam and returns its assigned ID
func (r *ExamRepository) CreateExam(ctx context.Context, exam *models.Exam) (int64, error) {
	sql, args, err := r.sb.Insert("exams").
		Columns("subject", "exam_date", "topics").
		Values(exam.Subject, exam.Date, exam.Topics).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create exam SQL")
		return 0, fmt.Errorf("failed to build create exam query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&exam.ID, &exam.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create exam query")
		return 0, fmt.Errorf("error creating exam: %w", err)
	}

	return exam.ID, nil
}

// GetExamByID retrieves an exam by ID
func (r *ExamRepository) GetExamByID(ctx context.Context, id int64) (*models.Exam, error) {
	sql, args, err := r.sb.Select("id", "subject", "exam_date", "topics", "created_at").
		From("exams").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get exam by ID SQL")
		return nil, fmt.Errorf("failed to build get exam query: %w", err)
	}

	exam := &models.Exam{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exam.ID, &exam.Subject, &exam.Date, &exam.Topics, &exam.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExamNotFound
		}
		logger.Error().Err(err).Int64("examId", id).Msg("Error scanning exam row")
		return nil, fmt.Errorf("error getting exam by ID: %w", err)
	}

	return exam, nil
}

// ListExams retrieves every exam on the board, soonest date first
func (r *ExamRepository) ListExams(ctx context.Context) ([]models.Exam, error) {
	return r.list(ctx, nil)
}

// ListExamsBySubject retrieves all exams for one subject, soonest date first
func (r *ExamRepository) ListExamsBySubject(ctx context.Context, subject models.Subject) ([]models.Exam, error) {
	return r.list(ctx, &subject)
}

func (r *ExamRepository) list(ctx context.Context, subject *models.Subject) ([]models.Exam, error) {
	query := r.sb.Select("id", "subject", "exam_date", "topics", "created_at").
		From("exams").
		OrderBy("exam_date ASC", "id ASC")

	if subject != nil {
		query = query.Where(squirrel.Eq{"subject": *subject})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list exams SQL")
		return nil, fmt.Errorf("failed to build list exams query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list exams query")
		return nil, fmt.Errorf("error querying exams: %w", err)
	}
	defer rows.Close()

	exams := []models.Exam{}
	for rows.Next() {
		exam := models.Exam{}
		if err := rows.Scan(&exam.ID, &exam.Subject, &exam.Date, &exam.Topics, &exam.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning exam row during list")
			return nil, fmt.Errorf("error scanning exam row: %w", err)
		}
		exams = append(exams, exam)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating exam rows")
		return nil, fmt.Errorf("error iterating exam rows: %w", err)
	}

	return exams, nil
}

// DeleteExam deletes an exam by ID. It reports whether a row was actually
// removed; deleting an exam that is already gone is not an error.
func (r *ExamRepository) DeleteExam(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Delete("exams").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete exam SQL")
		return false, fmt.Errorf("failed to build delete exam query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("examId", id).Msg("Error executing delete exam query")
		return false, fmt.Errorf("error deleting exam: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}
