// Package student holds the business operations behind the student form and CLI.
package student

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/studentdb/internal/models"
)

// Service defines all student-related business operations
type Service interface {
	// Read operations
	ListAll(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id int) (models.Student, bool, error)
	Count(ctx context.Context) (int, error)

	// Write operations
	Add(ctx context.Context, in FormInput) (bool, error)
}

// repository defines the data access methods needed by the student service
// This interface is private to the service layer
type repository interface {
	Create(ctx context.Context, candidate models.Candidate) (bool, error)
	ListAll(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id int) (models.Student, bool, error)
	Count(ctx context.Context) (int, error)
}

// service implements Service interface with private repository
type service struct {
	repo   repository
	logger *slog.Logger
}

// NewService creates a new student service
func NewService(repo repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{repo: repo, logger: logger}
}

// Add validates the form input and stores the new student.
// The repository is never called when validation fails.
func (s *service) Add(ctx context.Context, in FormInput) (bool, error) {
	candidate, err := ParseCandidate(in)
	if err != nil {
		return false, err
	}

	ok, err := s.repo.Create(ctx, candidate)
	if err != nil {
		s.logger.Error("failed to add student", "error", err)
		return false, err
	}
	s.logger.Info("student added", "first_name", candidate.FirstName, "last_name", candidate.LastName)
	return ok, nil
}

// ListAll retrieves all students ordered by ID
func (s *service) ListAll(ctx context.Context) ([]models.Student, error) {
	students, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list students", "error", err)
	}
	return students, err
}

// FindByID retrieves a specific student
func (s *service) FindByID(ctx context.Context, id int) (models.Student, bool, error) {
	student, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to find student", "id", id, "error", err)
	}
	return student, found, err
}

// Count returns the number of stored students
func (s *service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
