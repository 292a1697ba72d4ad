package models

import "strconv"

// Student is a persisted row of the students table.
// Values are projections of storage and are never written back.
type Student struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
	Email     string `json:"email"`
}

// Candidate is a student under construction. It has no ID until the store assigns one.
type Candidate struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
	Email     string `json:"email"`
}

// WithID returns the persisted form of the candidate.
func (c Candidate) WithID(id int) Student {
	return Student{
		ID:        id,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Age:       c.Age,
		Email:     c.Email,
	}
}

// GetID lets output formatters print just the identifier.
func (s Student) GetID() int {
	return s.ID
}

// Row returns the student as table cells in column order.
func (s Student) Row() []string {
	return []string{
		strconv.Itoa(s.ID),
		s.FirstName,
		s.LastName,
		strconv.Itoa(s.Age),
		s.Email,
	}
}

// StudentColumns are the table headers matching Row.
var StudentColumns = []string{"ID", "First Name", "Last Name", "Age", "Email"}
