package student

import "fmt"

// Validation messages shown to the user
const (
	MsgFieldsRequired = "All fields required"
	MsgAgeNotNumber   = "Age must be a number"
	MsgEmptyID        = "enter an ID"
	MsgIDNotNumber    = "ID must be a number"
)

// ValidationError reports input rejected before any store call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Domain errors for search input
var (
	ErrEmptyID   = &ValidationError{Field: "id", Message: MsgEmptyID}
	ErrInvalidID = &ValidationError{Field: "id", Message: MsgIDNotNumber}
)
