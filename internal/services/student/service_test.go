package student

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/studentdb/internal/database"
	"github.com/thenoetrevino/studentdb/internal/models"
	"github.com/thenoetrevino/studentdb/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// recordingRepo counts calls so tests can assert the store was never touched
type recordingRepo struct {
	creates   []models.Candidate
	createOK  bool
	createErr error
}

func (r *recordingRepo) Create(_ context.Context, c models.Candidate) (bool, error) {
	r.creates = append(r.creates, c)
	return r.createOK, r.createErr
}

func (r *recordingRepo) ListAll(context.Context) ([]models.Student, error) {
	return []models.Student{}, nil
}

func (r *recordingRepo) FindByID(context.Context, int) (models.Student, bool, error) {
	return models.Student{}, false, nil
}

func (r *recordingRepo) Count(context.Context) (int, error) {
	return 0, nil
}

func setupService(t *testing.T) (Service, *database.Provider) {
	t.Helper()
	provider := testutil.SetupTestDB(t)
	return NewService(database.NewRepository(provider), nil), provider
}

func adaInput() FormInput {
	return FormInput{FirstName: "Ada", LastName: "Lovelace", Age: "28", Email: "ada@x.com"}
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestAdd(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()

	ok, err := svc.Add(ctx, adaInput())
	require.NoError(t, err)
	assert.True(t, ok)

	students, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Student{testutil.Ada().WithID(1)}, students)
}

func TestAdd_TrimsInput(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, FormInput{FirstName: "  Ada ", LastName: "\tLovelace", Age: " 28 ", Email: "ada@x.com\n"})
	require.NoError(t, err)

	student, found, err := svc.FindByID(ctx, 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, testutil.Ada().WithID(1), student)
}

func TestAdd_NonNumericAgeNeverCallsCreate(t *testing.T) {
	t.Parallel()
	repo := &recordingRepo{createOK: true}
	svc := NewService(repo, nil)

	in := adaInput()
	in.Age = "abc"
	ok, err := svc.Add(context.Background(), in)

	assert.False(t, ok)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, MsgAgeNotNumber, vErr.Message)
	assert.Empty(t, repo.creates)
}

func TestAdd_EmptyLastNameNeverCallsCreate(t *testing.T) {
	t.Parallel()
	repo := &recordingRepo{createOK: true}
	svc := NewService(repo, nil)

	in := adaInput()
	in.LastName = "   "
	ok, err := svc.Add(context.Background(), in)

	assert.False(t, ok)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, MsgFieldsRequired, vErr.Message)
	assert.Equal(t, "LastName", vErr.Field)
	assert.Empty(t, repo.creates)
}

func TestAdd_StorageErrorPassesThrough(t *testing.T) {
	t.Parallel()
	storeErr := &database.StorageError{Op: "create student", Err: errors.New("disk full")}
	repo := &recordingRepo{createErr: storeErr}
	svc := NewService(repo, nil)

	ok, err := svc.Add(context.Background(), adaInput())

	assert.False(t, ok)
	assert.ErrorIs(t, err, storeErr)
	assert.Len(t, repo.creates, 1)
}

func TestFindByID_Absent(t *testing.T) {
	t.Parallel()
	svc, provider := setupService(t)
	testutil.CreateTestStudent(t, provider, testutil.Ada())

	_, found, err := svc.FindByID(context.Background(), 99)

	require.NoError(t, err)
	assert.False(t, found)
}

func TestCount(t *testing.T) {
	t.Parallel()
	svc, provider := setupService(t)
	testutil.CreateTestStudent(t, provider, testutil.Ada())
	testutil.CreateTestStudent(t, provider, testutil.Grace())

	count, err := svc.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
