package models

import "errors"

// Domain-specific errors for student lookups
var (
	// ErrStudentNotFound indicates that no row matches the requested ID
	ErrStudentNotFound = errors.New("student not found")
)
