package database

import (
	"context"

	"github.com/thenoetrevino/studentdb/internal/models"
)

// StudentReader defines read operations for students.
type StudentReader interface {
	ListAll(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id int) (models.Student, bool, error)
	Count(ctx context.Context) (int, error)
}

// StudentWriter defines write operations for students.
type StudentWriter interface {
	Create(ctx context.Context, candidate models.Candidate) (bool, error)
}

// StudentRepository combines all student-related operations.
type StudentRepository interface {
	StudentReader
	StudentWriter
}
