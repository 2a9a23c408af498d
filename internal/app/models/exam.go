package models

import "time"

// Exam is a scheduled assessment tracked by the group. Exams are immutable
// once created: they are added, listed, and eventually deleted, either by an
// admin or by the expiry reaper once their scheduled moment has passed.
type Exam struct {
	ID      int64   `json:"id" db:"id"`
	Subject Subject `json:"subject" db:"subject"`
	// Date is the scheduled day as an ISO-8601 calendar date (YYYY-MM-DD).
	// It stays a string end to end; the dates package owns parsing, so a
	// malformed stored value surfaces as a per-record parse failure instead
	// of being unrepresentable.
	Date      string    `json:"date" db:"exam_date"`
	Topics    []string  `json:"topics" db:"topics"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
