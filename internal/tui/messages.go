package tui

import "github.com/thenoetrevino/studentdb/internal/models"

// studentAddedMsg is returned when a background add finishes
type studentAddedMsg struct {
	ok  bool
	err error
}

// studentsLoadedMsg is returned when a background list finishes
type studentsLoadedMsg struct {
	generation uint64
	students   []models.Student
	err        error
}

// studentFoundMsg is returned when a background search finishes
type studentFoundMsg struct {
	generation uint64
	id         int
	student    models.Student
	found      bool
	err        error
}
