package controllers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tullab/tullab/internal/app/models"
	"github.com/tullab/tullab/internal/app/models/dto"
	"github.com/tullab/tullab/internal/app/services"
	"github.com/tullab/tullab/internal/pkg/apperrors"
)

func newExamRouter(svc services.ExamService, now time.Time) *gin.Engine {
	ctrl := NewExamController(svc)
	ctrl.nowFunc = func() time.Time { return now }

	router := gin.New()
	router.POST("/api/v1/exams", ctrl.CreateExam)
	router.GET("/api/v1/exams", ctrl.ListExams)
	router.GET("/api/v1/exams/:id", ctrl.GetExamByID)
	router.DELETE("/api/v1/exams/:id", ctrl.DeleteExam)
	return router
}

func TestCreateExam(t *testing.T) {
	svc := newFakeExamService()
	router := newExamRouter(svc, testNow)

	body := []byte(`{"subject":"MATH","date":"2024-01-15","topics":["derivatives","integrals"]}`)
	w := performRequest(router, http.MethodPost, "/api/v1/exams", body)

	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var exam dto.ExamResponse
	decodeSuccess(t, w, &exam)

	assert.Equal(t, int64(1), exam.ID)
	assert.Equal(t, "MATH", exam.Subject)
	assert.Equal(t, "2024-01-15", exam.Date)
	assert.Equal(t, []string{"derivatives", "integrals"}, exam.Topics)
	require.NotNil(t, exam.RemainingDays)
	assert.Equal(t, 5, *exam.RemainingDays)
	assert.Equal(t, "5 days remaining", exam.Countdown)
}

func TestCreateExamBindingErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"subject":`},
		{"missing subject", `{"date":"2024-01-15","topics":["algebra"]}`},
		{"missing date", `{"subject":"MATH","topics":["algebra"]}`},
		{"empty topics", `{"subject":"MATH","date":"2024-01-15","topics":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newFakeExamService()
			router := newExamRouter(svc, testNow)

			w := performRequest(router, http.MethodPost, "/api/v1/exams", []byte(tt.body))

			require.Equal(t, http.StatusBadRequest, w.Code, "body: %s", w.Body.String())
			env := decodeError(t, w)
			assert.Equal(t, string(dto.ErrorCodeValidationFailed), env.Error.Code)
			assert.Empty(t, svc.exams, "nothing should reach the service")
		})
	}
}

func TestCreateExamServiceErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{
			name:     "unknown subject",
			err:      fmt.Errorf("%w: %q", apperrors.ErrInvalidSubject, "HISTORY"),
			wantCode: string(dto.ErrorCodeInvalidSubject),
		},
		{
			name:     "unparseable date",
			err:      fmt.Errorf("%w: %q", apperrors.ErrInvalidExamDate, "2024-02-30"),
			wantCode: string(dto.ErrorCodeInvalidDate),
		},
		{
			name:     "blank topic",
			err:      fmt.Errorf("%w: topics must not be blank", apperrors.ErrValidationFailed),
			wantCode: string(dto.ErrorCodeValidationFailed),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newFakeExamService()
			svc.createErr = tt.err
			router := newExamRouter(svc, testNow)

			body := []byte(`{"subject":"MATH","date":"2024-01-15","topics":["algebra"]}`)
			w := performRequest(router, http.MethodPost, "/api/v1/exams", body)

			require.Equal(t, http.StatusBadRequest, w.Code, "body: %s", w.Body.String())
			env := decodeError(t, w)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestGetExamByID(t *testing.T) {
	svc := newFakeExamService(models.Exam{
		Subject: models.SubjectPhysics,
		Date:    "2024-01-11",
		Topics:  []string{"waves"},
	})
	router := newExamRouter(svc, testNow)

	w := performRequest(router, http.MethodGet, "/api/v1/exams/1", nil)

	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var exam dto.ExamResponse
	decodeSuccess(t, w, &exam)
	assert.Equal(t, "PHYSICS", exam.Subject)
	require.NotNil(t, exam.RemainingDays)
	assert.Equal(t, 1, *exam.RemainingDays)
	assert.Equal(t, "1 day remaining", exam.Countdown)
}

func TestGetExamByIDErrors(t *testing.T) {
	svc := newFakeExamService()
	router := newExamRouter(svc, testNow)

	t.Run("non-numeric id", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/v1/exams/abc", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeError(t, w)
		assert.Equal(t, string(dto.ErrorCodeValidationFailed), env.Error.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/v1/exams/99", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		env := decodeError(t, w)
		assert.Equal(t, string(dto.ErrorCodeResourceNotFound), env.Error.Code)
	})
}

func TestListExams(t *testing.T) {
	svc := newFakeExamService(
		models.Exam{Subject: models.SubjectMath, Date: "2024-01-08", Topics: []string{"limits"}},
		models.Exam{Subject: models.SubjectMath, Date: "2024-01-10", Topics: []string{"series"}},
		models.Exam{Subject: models.SubjectBiology, Date: "2024-01-15", Topics: []string{"cells"}},
	)
	router := newExamRouter(svc, testNow)

	w := performRequest(router, http.MethodGet, "/api/v1/exams", nil)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var list dto.ExamListResponse
	decodeSuccess(t, w, &list)
	require.Len(t, list.Exams, 3)

	// All countdowns are rendered against the same instant.
	assert.Equal(t, "passed", list.Exams[0].Countdown)
	assert.Equal(t, "today", list.Exams[1].Countdown)
	assert.Equal(t, "5 days remaining", list.Exams[2].Countdown)
}

func TestListExamsFiltersBySubject(t *testing.T) {
	svc := newFakeExamService(
		models.Exam{Subject: models.SubjectMath, Date: "2024-01-12", Topics: []string{"limits"}},
		models.Exam{Subject: models.SubjectBiology, Date: "2024-01-15", Topics: []string{"cells"}},
	)
	router := newExamRouter(svc, testNow)

	w := performRequest(router, http.MethodGet, "/api/v1/exams?subject=BIOLOGY", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list dto.ExamListResponse
	decodeSuccess(t, w, &list)
	require.Len(t, list.Exams, 1)
	assert.Equal(t, "BIOLOGY", list.Exams[0].Subject)
}

func TestListExamsUnknownSubject(t *testing.T) {
	svc := newFakeExamService()
	svc.listErr = fmt.Errorf("%w: %q", apperrors.ErrInvalidSubject, "HISTORY")
	router := newExamRouter(svc, testNow)

	w := performRequest(router, http.MethodGet, "/api/v1/exams?subject=HISTORY", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeError(t, w)
	assert.Equal(t, string(dto.ErrorCodeInvalidSubject), env.Error.Code)
}

func TestListExamsRendersUnknownCountdown(t *testing.T) {
	// A row with a corrupt date must not break the listing.
	svc := newFakeExamService(
		models.Exam{Subject: models.SubjectMath, Date: "not-a-date", Topics: []string{"limits"}},
	)
	router := newExamRouter(svc, testNow)

	w := performRequest(router, http.MethodGet, "/api/v1/exams", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list dto.ExamListResponse
	decodeSuccess(t, w, &list)
	require.Len(t, list.Exams, 1)
	assert.Nil(t, list.Exams[0].RemainingDays)
	assert.Equal(t, "unknown", list.Exams[0].Countdown)
}

func TestDeleteExam(t *testing.T) {
	svc := newFakeExamService(models.Exam{
		Subject: models.SubjectMath,
		Date:    "2024-01-15",
		Topics:  []string{"algebra"},
	})
	router := newExamRouter(svc, testNow)

	w := performRequest(router, http.MethodDelete, "/api/v1/exams/1", nil)

	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	env := decodeSuccess(t, w, nil)
	assert.Equal(t, "Exam deleted successfully", env.Message)
	assert.Empty(t, svc.exams)

	// A second delete of the same exam reports not found.
	w = performRequest(router, http.MethodDelete, "/api/v1/exams/1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
