package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/tullab/tullab/internal/app/models"
	"github.com/tullab/tullab/internal/app/repositories"
	"github.com/tullab/tullab/internal/pkg/apperrors"
	"github.com/tullab/tullab/internal/pkg/filestorage"
	"github.com/tullab/tullab/internal/pkg/logger"
)

// StudyFileService defines the interface for study file operations
type StudyFileService interface {
	CreateStudyFile(ctx context.Context, subject models.Subject, title string, fileHeader *multipart.FileHeader) (*models.StudyFile, error)
	GetStudyFileByID(ctx context.Context, id int64) (*models.StudyFile, error)
	ListStudyFiles(ctx context.Context, subject *models.Subject, page, pageSize int) ([]models.StudyFile, int64, error)
	DeleteStudyFile(ctx context.Context, id int64) error
}

// studyFileServiceImpl implements the StudyFileService interface
type studyFileServiceImpl struct {
	fileRepo    *repositories.StudyFileRepository
	fileStorage filestorage.FileStorage
}

// NewStudyFileService creates a new study file service instance
func NewStudyFileService(fileRepo *repositories.StudyFileRepository, fileStorage filestorage.FileStorage) StudyFileService {
	return &studyFileServiceImpl{
		fileRepo:    fileRepo,
		fileStorage: fileStorage,
	}
}

// CreateStudyFile stores the uploaded file and records it in the database
func (s *studyFileServiceImpl) CreateStudyFile(ctx context.Context, subject models.Subject, title string, fileHeader *multipart.FileHeader) (*models.StudyFile, error) {
	if !subject.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidSubject, subject)
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if fileHeader == nil {
		return nil, fmt.Errorf("%w: a file is required", apperrors.ErrValidationFailed)
	}

	fileURL, err := s.fileStorage.SaveFile(fileHeader)
	if err != nil {
		return nil, fmt.Errorf("error saving uploaded file: %w", err)
	}

	file := &models.StudyFile{
		Subject:  subject,
		Title:    title,
		FileName: fileHeader.Filename,
		FileURL:  fileURL,
		FileSize: fileHeader.Size,
		FileType: fileHeader.Header.Get("Content-Type"),
	}

	if _, err := s.fileRepo.CreateStudyFile(ctx, file); err != nil {
		// Do not leave an orphaned file on disk
		if delErr := s.fileStorage.DeleteFile(fileURL); delErr != nil {
			logger.Error().Err(delErr).Str("fileUrl", fileURL).Msg("Failed to clean up file after insert error")
		}
		return nil, fmt.Errorf("error creating study file record: %w", err)
	}

	return file, nil
}

// GetStudyFileByID retrieves a study file by ID
func (s *studyFileServiceImpl) GetStudyFileByID(ctx context.Context, id int64) (*models.StudyFile, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid study file ID", apperrors.ErrValidationFailed)
	}
	return s.fileRepo.GetStudyFileByID(ctx, id)
}

// ListStudyFiles retrieves study files with optional subject filtering and pagination
func (s *studyFileServiceImpl) ListStudyFiles(ctx context.Context, subject *models.Subject, page, pageSize int) ([]models.StudyFile, int64, error) {
	if subject != nil && !subject.IsValid() {
		return nil, 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidSubject, *subject)
	}
	return s.fileRepo.ListStudyFiles(ctx, subject, page, pageSize)
}

// DeleteStudyFile removes a study file record and the stored file itself
func (s *studyFileServiceImpl) DeleteStudyFile(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid study file ID", apperrors.ErrValidationFailed)
	}

	file, err := s.fileRepo.GetStudyFileByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudyFileNotFound) {
			return apperrors.ErrStudyFileNotFound
		}
		return fmt.Errorf("error loading study file: %w", err)
	}

	removed, err := s.fileRepo.DeleteStudyFile(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting study file: %w", err)
	}
	if !removed {
		return apperrors.ErrStudyFileNotFound
	}

	// The record is gone; a leftover file on disk is only worth a log line
	if err := s.fileStorage.DeleteFile(file.FileURL); err != nil {
		logger.Error().Err(err).Str("fileUrl", file.FileURL).Msg("Failed to delete stored file")
	}

	return nil
}
