package state

import "github.com/thenoetrevino/studentdb/internal/models"

// TableState holds the rows currently shown in the results table.
// Reads that replace the table carry a generation. A read may land only while
// no newer read has replaced the rows; reads that leave the table alone
// (a search miss, an error) never supersede anything.
type TableState struct {
	rows       []models.Student
	generation uint64
	landed     uint64
}

// NewTableState creates an empty TableState.
func NewTableState() *TableState {
	return &TableState{rows: []models.Student{}}
}

// Rows returns the visible rows.
func (s *TableState) Rows() []models.Student {
	return s.rows
}

// Len returns the number of visible rows.
func (s *TableState) Len() int {
	return len(s.rows)
}

// NextGeneration reserves a generation for a newly dispatched read.
func (s *TableState) NextGeneration() uint64 {
	s.generation++
	return s.generation
}

// Generation returns the most recently reserved generation.
func (s *TableState) Generation() uint64 {
	return s.generation
}

// IsCurrent reports whether a read with the given generation may still land.
func (s *TableState) IsCurrent(gen uint64) bool {
	return gen > s.landed
}

// Land replaces the rows with the result of read gen and supersedes every older read.
func (s *TableState) Land(gen uint64, rows []models.Student) {
	if gen > s.landed {
		s.landed = gen
	}
	s.Replace(rows)
}

// Replace overwrites the visible rows.
func (s *TableState) Replace(rows []models.Student) {
	if rows == nil {
		rows = []models.Student{}
	}
	s.rows = rows
}
