package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tullab/tullab/internal/app/models"
	"github.com/tullab/tullab/internal/app/models/dto"
	"github.com/tullab/tullab/internal/app/services"
)

func newQuizRouter(svc services.QuizService) *gin.Engine {
	ctrl := NewQuizController(svc)

	router := gin.New()
	router.POST("/api/v1/quizzes", ctrl.CreateQuiz)
	router.GET("/api/v1/quizzes", ctrl.ListQuizzes)
	router.GET("/api/v1/quizzes/:id", ctrl.GetQuizByID)
	router.DELETE("/api/v1/quizzes/:id", ctrl.DeleteQuiz)
	return router
}

func TestCreateQuiz(t *testing.T) {
	svc := newFakeQuizService()
	router := newQuizRouter(svc)

	body := []byte(`{"subject":"ENGLISH","title":"Irregular verbs drill","url":"https://quizizz.com/join/abc123"}`)
	w := performRequest(router, http.MethodPost, "/api/v1/quizzes", body)

	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var quiz dto.QuizResponse
	decodeSuccess(t, w, &quiz)
	assert.Equal(t, int64(1), quiz.ID)
	assert.Equal(t, "ENGLISH", quiz.Subject)
	assert.Equal(t, "https://quizizz.com/join/abc123", quiz.URL)
}

func TestCreateQuizDuplicateURL(t *testing.T) {
	svc := newFakeQuizService(models.Quiz{
		Subject: models.SubjectEnglish,
		Title:   "Irregular verbs drill",
		URL:     "https://quizizz.com/join/abc123",
	})
	router := newQuizRouter(svc)

	// Same link again, even under another subject and title.
	body := []byte(`{"subject":"MATH","title":"Algebra warmup","url":"https://quizizz.com/join/abc123"}`)
	w := performRequest(router, http.MethodPost, "/api/v1/quizzes", body)

	require.Equal(t, http.StatusConflict, w.Code, "body: %s", w.Body.String())
	env := decodeError(t, w)
	assert.Equal(t, string(dto.ErrorCodeResourceAlreadyExists), env.Error.Code)
	assert.Len(t, svc.quizzes, 1)
}

func TestCreateQuizBindingErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing url", `{"subject":"MATH","title":"Algebra warmup"}`},
		{"not a url", `{"subject":"MATH","title":"Algebra warmup","url":"quiz please"}`},
		{"missing title", `{"subject":"MATH","url":"https://quizizz.com/join/abc123"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newFakeQuizService()
			router := newQuizRouter(svc)

			w := performRequest(router, http.MethodPost, "/api/v1/quizzes", []byte(tt.body))

			require.Equal(t, http.StatusBadRequest, w.Code, "body: %s", w.Body.String())
			env := decodeError(t, w)
			assert.Equal(t, string(dto.ErrorCodeValidationFailed), env.Error.Code)
			assert.Empty(t, svc.quizzes)
		})
	}
}

func TestGetQuizByID(t *testing.T) {
	svc := newFakeQuizService(models.Quiz{
		Subject: models.SubjectChemistry,
		Title:   "Periodic table race",
		URL:     "https://kahoot.it/challenge/xyz",
	})
	router := newQuizRouter(svc)

	w := performRequest(router, http.MethodGet, "/api/v1/quizzes/1", nil)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var quiz dto.QuizResponse
	decodeSuccess(t, w, &quiz)
	assert.Equal(t, "Periodic table race", quiz.Title)

	w = performRequest(router, http.MethodGet, "/api/v1/quizzes/42", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	env := decodeError(t, w)
	assert.Equal(t, string(dto.ErrorCodeResourceNotFound), env.Error.Code)
}

func TestListQuizzesPagination(t *testing.T) {
	seed := make([]models.Quiz, 0, 12)
	for i := 0; i < 12; i++ {
		seed = append(seed, models.Quiz{
			Subject: models.SubjectMath,
			Title:   "Quiz",
			URL:     "https://quizizz.com/join/" + string(rune('a'+i)),
		})
	}
	svc := newFakeQuizService(seed...)
	router := newQuizRouter(svc)

	w := performRequest(router, http.MethodGet, "/api/v1/quizzes?page=2&size=5", nil)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var list dto.QuizListResponse
	decodeSuccess(t, w, &list)
	assert.Len(t, list.Quizzes, 5)
	assert.Equal(t, dto.PaginationInfo{
		CurrentPage: 2,
		TotalPages:  3,
		PageSize:    5,
		TotalItems:  12,
	}, list.Pagination)
}

func TestListQuizzesFiltersBySubject(t *testing.T) {
	svc := newFakeQuizService(
		models.Quiz{Subject: models.SubjectMath, Title: "Algebra warmup", URL: "https://quizizz.com/join/a"},
		models.Quiz{Subject: models.SubjectEnglish, Title: "Irregular verbs drill", URL: "https://quizizz.com/join/b"},
	)
	router := newQuizRouter(svc)

	w := performRequest(router, http.MethodGet, "/api/v1/quizzes?subject=ENGLISH", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list dto.QuizListResponse
	decodeSuccess(t, w, &list)
	require.Len(t, list.Quizzes, 1)
	assert.Equal(t, "ENGLISH", list.Quizzes[0].Subject)
	assert.Equal(t, int64(1), list.Pagination.TotalItems)
}

func TestDeleteQuiz(t *testing.T) {
	svc := newFakeQuizService(models.Quiz{
		Subject: models.SubjectMath,
		Title:   "Algebra warmup",
		URL:     "https://quizizz.com/join/a",
	})
	router := newQuizRouter(svc)

	w := performRequest(router, http.MethodDelete, "/api/v1/quizzes/1", nil)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	env := decodeSuccess(t, w, nil)
	assert.Equal(t, "Quiz deleted successfully", env.Message)

	w = performRequest(router, http.MethodDelete, "/api/v1/quizzes/1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
