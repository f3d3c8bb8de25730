package entities

import "errors"

// Domain errors
var (
	// Employee errors
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmployeeAlreadyExists = errors.New("employee already exists")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidRole           = errors.New("invalid role")

	// Meeting errors
	ErrMeetingNotFound      = errors.New("meeting not found")
	ErrMeetingAlreadyExists = errors.New("meeting already exists")
	ErrTranscriptNotFound   = errors.New("transcript not found")
	ErrTaskNotFound         = errors.New("task recommendation not found")

	// Analytics errors
	ErrSentimentConflict = errors.New("rolling sentiment already recorded for this meeting and person")
	ErrInvalidTaskStatus = errors.New("invalid task status")

	// Access errors
	ErrPolicyViolation = errors.New("row-level security policy violation")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidToken    = errors.New("invalid token")
)
