package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tullab/tullab/internal/app/models"
	"github.com/tullab/tullab/internal/app/models/dto"
	"github.com/tullab/tullab/internal/app/services"
	"github.com/tullab/tullab/internal/pkg/apperrors"
)

func newStudyFileRouter(svc services.StudyFileService) *gin.Engine {
	ctrl := NewStudyFileController(svc)

	router := gin.New()
	router.POST("/api/v1/files", ctrl.CreateStudyFile)
	router.GET("/api/v1/files", ctrl.ListStudyFiles)
	router.GET("/api/v1/files/:id", ctrl.GetStudyFileByID)
	router.DELETE("/api/v1/files/:id", ctrl.DeleteStudyFile)
	return router
}

func TestCreateStudyFile(t *testing.T) {
	svc := newFakeStudyFileService()
	router := newStudyFileRouter(svc)

	req := newUploadRequest(t, "/api/v1/files", map[string]string{
		"subject": "PHYSICS",
		"title":   "Chapter 4 summary",
	}, "chapter4.pdf", []byte("%PDF-1.4 fake"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var file dto.StudyFileResponse
	decodeSuccess(t, w, &file)
	assert.Equal(t, "PHYSICS", file.Subject)
	assert.Equal(t, "Chapter 4 summary", file.Title)
	assert.Equal(t, "chapter4.pdf", file.FileName)
	assert.NotEmpty(t, file.FileURL)
	assert.Equal(t, int64(len("%PDF-1.4 fake")), file.FileSize)
}

func TestCreateStudyFileRequiresFile(t *testing.T) {
	svc := newFakeStudyFileService()
	router := newStudyFileRouter(svc)

	// Form fields only, no file part.
	req := newUploadRequest(t, "/api/v1/files", map[string]string{
		"subject": "PHYSICS",
		"title":   "Chapter 4 summary",
	}, "", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code, "body: %s", w.Body.String())
	env := decodeError(t, w)
	assert.Equal(t, string(dto.ErrorCodeValidationFailed), env.Error.Code)
	assert.Equal(t, "file", env.Error.Field)
	assert.Empty(t, svc.files)
}

func TestCreateStudyFileServiceErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{
			name:     "unknown subject",
			err:      fmt.Errorf("%w: %q", apperrors.ErrInvalidSubject, "GYM"),
			wantCode: string(dto.ErrorCodeInvalidSubject),
		},
		{
			name:     "blank title",
			err:      fmt.Errorf("%w: title must not be blank", apperrors.ErrValidationFailed),
			wantCode: string(dto.ErrorCodeValidationFailed),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newFakeStudyFileService()
			svc.createErr = tt.err
			router := newStudyFileRouter(svc)

			req := newUploadRequest(t, "/api/v1/files", map[string]string{
				"subject": "GYM",
				"title":   "",
			}, "notes.pdf", []byte("data"))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code, "body: %s", w.Body.String())
			env := decodeError(t, w)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestGetStudyFileByID(t *testing.T) {
	svc := newFakeStudyFileService(models.StudyFile{
		Subject:  models.SubjectChemistry,
		Title:    "Lab safety sheet",
		FileName: "safety.pdf",
		FileURL:  "http://localhost:8080/uploads/safety.pdf",
		FileSize: 2048,
		FileType: "application/pdf",
	})
	router := newStudyFileRouter(svc)

	w := performRequest(router, http.MethodGet, "/api/v1/files/1", nil)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var file dto.StudyFileResponse
	decodeSuccess(t, w, &file)
	assert.Equal(t, "Lab safety sheet", file.Title)
	assert.Equal(t, "application/pdf", file.FileType)

	w = performRequest(router, http.MethodGet, "/api/v1/files/9", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	env := decodeError(t, w)
	assert.Equal(t, string(dto.ErrorCodeResourceNotFound), env.Error.Code)
}

func TestListStudyFiles(t *testing.T) {
	svc := newFakeStudyFileService(
		models.StudyFile{Subject: models.SubjectMath, Title: "Algebra notes", FileName: "algebra.pdf"},
		models.StudyFile{Subject: models.SubjectMath, Title: "Geometry notes", FileName: "geometry.pdf"},
		models.StudyFile{Subject: models.SubjectArabic, Title: "Grammar summary", FileName: "grammar.pdf"},
	)
	router := newStudyFileRouter(svc)

	w := performRequest(router, http.MethodGet, "/api/v1/files?subject=MATH", nil)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var list dto.StudyFileListResponse
	decodeSuccess(t, w, &list)
	require.Len(t, list.Files, 2)
	assert.Equal(t, int64(2), list.Pagination.TotalItems)
	for _, file := range list.Files {
		assert.Equal(t, "MATH", file.Subject)
	}
}

func TestDeleteStudyFile(t *testing.T) {
	svc := newFakeStudyFileService(models.StudyFile{
		Subject:  models.SubjectMath,
		Title:    "Algebra notes",
		FileName: "algebra.pdf",
	})
	router := newStudyFileRouter(svc)

	w := performRequest(router, http.MethodDelete, "/api/v1/files/1", nil)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	env := decodeSuccess(t, w, nil)
	assert.Equal(t, "Study file deleted successfully", env.Message)

	w = performRequest(router, http.MethodDelete, "/api/v1/files/1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
