package student

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/thenoetrevino/studentdb/internal/models"
)

// FormInput is the raw text of the four add-student fields.
type FormInput struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Age       string `validate:"required"`
	Email     string `validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseCandidate trims every field, requires all four and parses the age as an integer.
func ParseCandidate(in FormInput) (models.Candidate, error) {
	trimmed := FormInput{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Age:       strings.TrimSpace(in.Age),
		Email:     strings.TrimSpace(in.Email),
	}

	if err := validate.Struct(trimmed); err != nil {
		field := ""
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			field = fieldErrs[0].Field()
		}
		return models.Candidate{}, &ValidationError{Field: field, Message: MsgFieldsRequired}
	}

	age, err := strconv.Atoi(trimmed.Age)
	if err != nil {
		return models.Candidate{}, &ValidationError{Field: "Age", Message: MsgAgeNotNumber}
	}

	return models.Candidate{
		FirstName: trimmed.FirstName,
		LastName:  trimmed.LastName,
		Age:       age,
		Email:     trimmed.Email,
	}, nil
}

// ParseID trims and strictly parses a search identifier.
func ParseID(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrEmptyID
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}
