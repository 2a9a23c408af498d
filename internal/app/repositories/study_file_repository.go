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
	"github.com/tullab/tullab/internal/pkg/helpers"
	"github.com/tullab/tullab/internal/pkg/logger"
)

// StudyFileRepository handles study file database operations
type StudyFileRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudyFileRepository creates a new StudyFileRepository
func NewStudyFileRepository(db *pgxpool.Pool) *StudyFileRepository {
	return &StudyFileRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateStudyFile inserts a new study file record and returns its assigned ID
func (r *StudyFileRepository) CreateStudyFile(ctx context.Context, file *models.StudyFile) (int64, error) {
	sql, args, err := r.sb.Insert("study_files").
		Columns("subject", "title", "file_name", "file_url", "file_size", "file_type").
		Values(file.Subject, file.Title, file.FileName, file.FileURL, file.FileSize, file.FileType).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create study file SQL")
		return 0, fmt.Errorf("failed to build create study file query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&file.ID, &file.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create study file query")
		return 0, fmt.Errorf("error creating study file: %w", err)
	}

	return file.ID, nil
}

// GetStudyFileByID retrieves a study file by ID
func (r *StudyFileRepository) GetStudyFileByID(ctx context.Context, id int64) (*models.StudyFile, error) {
	sql, args, err := r.sb.Select("id", "subject", "title", "file_name", "file_url", "file_size", "file_type", "created_at").
		From("study_files").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get study file by ID SQL")
		return nil, fmt.Errorf("failed to build get study file query: %w", err)
	}

	file := &models.StudyFile{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&file.ID, &file.Subject, &file.Title, &file.FileName, &file.FileURL, &file.FileSize, &file.FileType, &file.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudyFileNotFound
		}
		logger.Error().Err(err).Int64("fileId", id).Msg("Error scanning study file row")
		return nil, fmt.Errorf("error getting study file by ID: %w", err)
	}

	return file, nil
}

// ListStudyFiles retrieves study files with optional subject filtering and pagination
func (r *StudyFileRepository) ListStudyFiles(ctx context.Context, subject *models.Subject, page, pageSize int) ([]models.StudyFile, int64, error) {
	query := r.sb.Select("id", "subject", "title", "file_name", "file_url", "file_size", "file_type", "created_at").
		From("study_files").
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
		logger.Error().Err(err).Msg("Error building list study files SQL")
		return nil, 0, fmt.Errorf("failed to build list study files query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list study files query")
		return nil, 0, fmt.Errorf("error querying study files: %w", err)
	}
	defer rows.Close()

	files := []models.StudyFile{}
	var total int64

	for rows.Next() {
		file := models.StudyFile{}
		if err := rows.Scan(
			&file.ID, &file.Subject, &file.Title, &file.FileName, &file.FileURL, &file.FileSize, &file.FileType, &file.CreatedAt,
			&total); err != nil {
			logger.Error().Err(err).Msg("Error scanning study file row during list")
			return nil, 0, fmt.Errorf("error scanning study file row: %w", err)
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating study file rows")
		return nil, 0, fmt.Errorf("error iterating study file rows: %w", err)
	}

	return files, total, nil
}

// DeleteStudyFile deletes a study file record by ID and reports whether a
// row was actually removed
func (r *StudyFileRepository) DeleteStudyFile(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Delete("study_files").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete study file SQL")
		return false, fmt.Errorf("failed to build delete study file query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("fileId", id).Msg("Error executing delete study file query")
		return false, fmt.Errorf("error deleting study file: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}
