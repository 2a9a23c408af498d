package models

import "time"

// Quiz is an external quiz link (Kahoot, Quizizz, a Google form) shared
// with the group for a subject. The link is unique across the board.
type Quiz struct {
	ID        int64     `json:"id" db:"id"`
	Subject   Subject   `json:"subject" db:"subject"`
	Title     string    `json:"title" db:"title"`
	URL       string    `json:"url" db:"url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
