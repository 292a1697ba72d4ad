package database

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*StudentRepo
}

// NewRepository creates a new Repository on top of the given connection provider.
func NewRepository(provider ConnProvider) *Repository {
	return &Repository{
		StudentRepo: NewStudentRepo(provider),
	}
}
