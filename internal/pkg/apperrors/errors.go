package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
	ErrInvalidSubject   = errors.New("unknown subject code")
	ErrInvalidExamDate  = errors.New("exam date is not a valid calendar date")
)

// Exam errors
var (
	ErrExamNotFound = errors.New("exam not found")
)

// Study file errors
var (
	ErrStudyFileNotFound = errors.New("study file not found")
)

// Quiz errors
var (
	ErrQuizNotFound      = errors.New("quiz not found")
	ErrQuizAlreadyExists = errors.New("quiz with this link already exists")
)
