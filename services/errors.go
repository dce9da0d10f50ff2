package services

import "errors"

// Common errors
var (
	ErrValidation      = errors.New("validation error")
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrSessionNotFound = errors.New("session not found")
	ErrNoSessions      = errors.New("no sessions provided")
	ErrInternal        = errors.New("internal server error")
)
