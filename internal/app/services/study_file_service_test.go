package services

import (
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/tullab/tullab/internal/app/models"
	"github.com/tullab/tullab/internal/pkg/apperrors"
)

// recordingStorage tracks storage calls without touching disk.
type recordingStorage struct {
	saveErr error
	saved   []string
	deleted []string
}

func (s *recordingStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	url := "/uploads/" + fileHeader.Filename
	s.saved = append(s.saved, url)
	return url, nil
}

func (s *recordingStorage) DeleteFile(fileURL string) error {
	s.deleted = append(s.deleted, fileURL)
	return nil
}

func pdfHeader(name string) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     1024,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"application/pdf"}},
	}
}

func TestCreateStudyFileRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		subject models.Subject
		title   string
		header  *multipart.FileHeader
		wantErr error
	}{
		{"unknown subject", models.Subject("GYM"), "Lab notes", pdfHeader("notes.pdf"), apperrors.ErrInvalidSubject},
		{"lowercase subject", models.Subject("math"), "Lab notes", pdfHeader("notes.pdf"), apperrors.ErrInvalidSubject},
		{"blank title", models.SubjectMath, "   ", pdfHeader("notes.pdf"), apperrors.ErrValidationFailed},
		{"missing file", models.SubjectMath, "Lab notes", nil, apperrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := &recordingStorage{}
			svc := NewStudyFileService(nil, storage)

			_, err := svc.CreateStudyFile(context.Background(), tt.subject, tt.title, tt.header)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CreateStudyFile() error = %v, want %v", err, tt.wantErr)
			}
			if len(storage.saved) != 0 {
				t.Errorf("CreateStudyFile() saved a file despite invalid input")
			}
		})
	}
}

func TestCreateStudyFileStorageFailure(t *testing.T) {
	storage := &recordingStorage{saveErr: errors.New("disk full")}
	svc := NewStudyFileService(nil, storage)

	_, err := svc.CreateStudyFile(context.Background(), models.SubjectMath, "Lab notes", pdfHeader("notes.pdf"))
	if err == nil {
		t.Fatal("CreateStudyFile() expected an error when storage fails")
	}
	if len(storage.deleted) != 0 {
		t.Errorf("CreateStudyFile() deleted %v, nothing was saved", storage.deleted)
	}
}

func TestGetStudyFileByIDRejectsBadID(t *testing.T) {
	svc := NewStudyFileService(nil, &recordingStorage{})

	for _, id := range []int64{0, -3} {
		if _, err := svc.GetStudyFileByID(context.Background(), id); !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("GetStudyFileByID(%d) error = %v, want %v", id, err, apperrors.ErrValidationFailed)
		}
	}
}

func TestListStudyFilesRejectsUnknownSubject(t *testing.T) {
	svc := NewStudyFileService(nil, &recordingStorage{})

	subject := models.Subject("HISTORY")
	_, _, err := svc.ListStudyFiles(context.Background(), &subject, 1, 10)
	if !errors.Is(err, apperrors.ErrInvalidSubject) {
		t.Fatalf("ListStudyFiles() error = %v, want %v", err, apperrors.ErrInvalidSubject)
	}
}

func TestDeleteStudyFileRejectsBadID(t *testing.T) {
	storage := &recordingStorage{}
	svc := NewStudyFileService(nil, storage)

	if err := svc.DeleteStudyFile(context.Background(), 0); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("DeleteStudyFile(0) error = %v, want %v", err, apperrors.ErrValidationFailed)
	}
	if len(storage.deleted) != 0 {
		t.Errorf("DeleteStudyFile(0) touched storage")
	}
}
