package service

import "errors"

var (
	// ErrTaskNotFound indicates an edit referenced an unknown task ID.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidHours indicates an hour edit below the 1-hour task floor.
	ErrInvalidHours = errors.New("task hours must be at least 1")

	// ErrInvalidDate indicates a date edit that is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")
)
