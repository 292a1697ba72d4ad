package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/thenoetrevino/studentdb/internal/models"
)

// StudentRepo handles all student-related database operations.
// Each operation acquires and releases its own connection; there is no shared transaction.
type StudentRepo struct {
	provider ConnProvider
}

// NewStudentRepo creates a StudentRepo on top of provider.
func NewStudentRepo(provider ConnProvider) *StudentRepo {
	return &StudentRepo{provider: provider}
}

// Create inserts a new student. The store assigns the ID, which is not returned.
// Reports whether exactly one row was affected; on failure returns false and a *StorageError.
func (r *StudentRepo) Create(ctx context.Context, candidate models.Candidate) (bool, error) {
	var affected int64
	err := withConn(ctx, r.provider, "create student", func(conn *sql.Conn) error {
		result, err := conn.ExecContext(ctx,
			`INSERT INTO students (first_name, last_name, age, email) VALUES (?, ?, ?, ?)`,
			candidate.FirstName, candidate.LastName, candidate.Age, candidate.Email,
		)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// ListAll returns every student ordered by ascending ID.
// An empty table yields an empty slice; on failure the slice is empty and the error a *StorageError.
func (r *StudentRepo) ListAll(ctx context.Context) ([]models.Student, error) {
	students := []models.Student{}
	err := withConn(ctx, r.provider, "list students", func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx,
			`SELECT id, first_name, last_name, age, email FROM students ORDER BY id`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var s models.Student
			if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Age, &s.Email); err != nil {
				return err
			}
			students = append(students, s)
		}
		return rows.Err()
	})
	if err != nil {
		// no partial reads
		return []models.Student{}, err
	}
	return students, nil
}

// FindByID returns the student with the given ID and true, or false when no row matches.
// Absence is not an error.
func (r *StudentRepo) FindByID(ctx context.Context, id int) (models.Student, bool, error) {
	var (
		student models.Student
		found   bool
	)
	err := withConn(ctx, r.provider, "find student", func(conn *sql.Conn) error {
		err := conn.QueryRowContext(ctx,
			`SELECT id, first_name, last_name, age, email FROM students WHERE id = ?`, id,
		).Scan(&student.ID, &student.FirstName, &student.LastName, &student.Age, &student.Email)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil || !found {
		return models.Student{}, false, err
	}
	return student, true, nil
}

// Count returns the number of stored students.
func (r *StudentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := withConn(ctx, r.provider, "count students", func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
