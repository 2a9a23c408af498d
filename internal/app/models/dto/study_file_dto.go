package dto

import (
	"time"

	"github.com/tullab/tullab/internal/app/models"
)

// StudyFileResponse represents an uploaded study document
type StudyFileResponse struct {
	ID        int64     `json:"id" example:"12"`
	Subject   string    `json:"subject" example:"PHYSICS"`
	Title     string    `json:"title" example:"Chapter 4 summary"`
	FileName  string    `json:"fileName" example:"chapter4.pdf"`
	FileURL   string    `json:"fileUrl" example:"http://localhost:8080/uploads/8e7d.pdf"`
	FileSize  int64     `json:"fileSize" example:"1048576"`
	FileType  string    `json:"fileType" example:"application/pdf"` // MIME type
	CreatedAt time.Time `json:"createdAt"`
}

// StudyFileListResponse represents a paginated study file listing
type StudyFileListResponse struct {
	Files      []StudyFileResponse `json:"files"`
	Pagination PaginationInfo      `json:"pagination"`
}

// FromStudyFile converts a models.StudyFile to a StudyFileResponse
func FromStudyFile(file *models.StudyFile) StudyFileResponse {
	if file == nil {
		return StudyFileResponse{}
	}

	return StudyFileResponse{
		ID:        file.ID,
		Subject:   string(file.Subject),
		Title:     file.Title,
		FileName:  file.FileName,
		FileURL:   file.FileURL,
		FileSize:  file.FileSize,
		FileType:  file.FileType,
		CreatedAt: file.CreatedAt,
	}
}
