package services

import (
	"errors"
	"testing"

	"github.com/tullab/tullab/internal/app/models"
	"github.com/tullab/tullab/internal/pkg/apperrors"
)

func TestValidateExam(t *testing.T) {
	valid := func() *models.Exam {
		return &models.Exam{
			Subject: models.SubjectMath,
			Date:    "2024-06-01",
			Topics:  []string{"algebra", "geometry"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*models.Exam)
		wantErr error
	}{
		{
			name:   "valid exam",
			mutate: func(e *models.Exam) {},
		},
		{
			name:    "unknown subject",
			mutate:  func(e *models.Exam) { e.Subject = "GEOGRAPHY" },
			wantErr: apperrors.ErrInvalidSubject,
		},
		{
			name:    "lowercase subject",
			mutate:  func(e *models.Exam) { e.Subject = "math" },
			wantErr: apperrors.ErrInvalidSubject,
		},
		{
			name:    "impossible calendar day",
			mutate:  func(e *models.Exam) { e.Date = "2024-02-30" },
			wantErr: apperrors.ErrInvalidExamDate,
		},
		{
			name:    "wrong date format",
			mutate:  func(e *models.Exam) { e.Date = "01/06/2024" },
			wantErr: apperrors.ErrInvalidExamDate,
		},
		{
			name:    "no topics",
			mutate:  func(e *models.Exam) { e.Topics = nil },
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "blank topic",
			mutate:  func(e *models.Exam) { e.Topics = []string{"algebra", "  "} },
			wantErr: apperrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exam := valid()
			tt.mutate(exam)

			err := validateExam(exam)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("validateExam() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("validateExam() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateExamNil(t *testing.T) {
	if err := validateExam(nil); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("validateExam(nil) error = %v, want ErrValidationFailed", err)
	}
}
