package models

import "time"

// StudyFile is an uploaded document shared with the group, tied to a
// subject. The binary content lives on disk under the upload directory; the
// row keeps the public URL plus enough metadata to render a listing.
type StudyFile struct {
	ID        int64     `json:"id" db:"id"`
	Subject   Subject   `json:"subject" db:"subject"`
	Title     string    `json:"title" db:"title"`
	FileName  string    `json:"fileName" db:"file_name"`
	FileURL   string    `json:"fileUrl" db:"file_url"`
	FileSize  int64     `json:"fileSize" db:"file_size"`
	FileType  string    `json:"fileType" db:"file_type"` // MIME type
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
