package dto

import (
	"time"

	"github.com/tullab/tullab/internal/app/models"
	"github.com/tullab/tullab/internal/pkg/dates"
)

// CreateExamRequest represents the request to add an exam to the board
type CreateExamRequest struct {
	Subject string   `json:"subject" binding:"required" example:"MATH"`
	Date    string   `json:"date" binding:"required" example:"2024-01-10"`
	Topics  []string `json:"topics" binding:"required,min=1,dive,required" example:"derivatives,integrals"`
}

// ExamResponse represents an exam as rendered on the board, decorated with
// the remaining-day countdown so clients never re-implement the date math.
type ExamResponse struct {
	ID      int64    `json:"id" example:"7"`
	Subject string   `json:"subject" example:"MATH"`
	Date    string   `json:"date" example:"2024-01-10"`
	Topics  []string `json:"topics"`
	// RemainingDays is null when the stored date does not parse.
	RemainingDays *int      `json:"remainingDays" example:"5"`
	Countdown     string    `json:"countdown" example:"5 days remaining"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ExamListResponse represents the exam board listing
type ExamListResponse struct {
	Exams []ExamResponse `json:"exams"`
}

// FromExam converts a models.Exam to an ExamResponse, computing the
// countdown against the given reference instant.
func FromExam(exam *models.Exam, now time.Time) ExamResponse {
	if exam == nil {
		return ExamResponse{}
	}

	resp := ExamResponse{
		ID:        exam.ID,
		Subject:   string(exam.Subject),
		Date:      exam.Date,
		Topics:    exam.Topics,
		CreatedAt: exam.CreatedAt,
	}

	days, ok := dates.RemainingDays(exam.Date, now)
	if ok {
		resp.RemainingDays = &days
	}
	resp.Countdown = dates.Countdown(days, ok)

	return resp
}
