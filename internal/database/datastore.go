package database

// DataStore defines the unified interface for all data operations needed by the services.
// Consumers can depend on the smaller StudentReader / StudentWriter interfaces instead.
type DataStore interface {
	StudentRepository
}

var _ DataStore = (*Repository)(nil)
