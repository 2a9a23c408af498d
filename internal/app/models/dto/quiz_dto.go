package dto

import (
	"time"

	"github.com/tullab/tullab/internal/app/models"
)

// CreateQuizRequest represents the request to share a quiz link
type CreateQuizRequest struct {
	Subject string `json:"subject" binding:"required" example:"ENGLISH"`
	Title   string `json:"title" binding:"required" example:"Irregular verbs drill"`
	URL     string `json:"url" binding:"required,url" example:"https://quizizz.com/join/abc123"`
}

// QuizResponse represents a shared quiz link
type QuizResponse struct {
	ID        int64     `json:"id" example:"3"`
	Subject   string    `json:"subject" example:"ENGLISH"`
	Title     string    `json:"title" example:"Irregular verbs drill"`
	URL       string    `json:"url" example:"https://quizizz.com/join/abc123"`
	CreatedAt time.Time `json:"createdAt"`
}

// QuizListResponse represents a paginated quiz listing
type QuizListResponse struct {
	Quizzes    []QuizResponse `json:"quizzes"`
	Pagination PaginationInfo `json:"pagination"`
}

// FromQuiz converts a models.Quiz to a QuizResponse
func FromQuiz(quiz *models.Quiz) QuizResponse {
	if quiz == nil {
		return QuizResponse{}
	}

	return QuizResponse{
		ID:        quiz.ID,
		Subject:   string(quiz.Subject),
		Title:     quiz.Title,
		URL:       quiz.URL,
		CreatedAt: quiz.CreatedAt,
	}
}
