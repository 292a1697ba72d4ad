package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	base := errors.New("boom")

	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(base))
	assert.Equal(t, ExitNotFound, ExitCode(Exit(ExitNotFound, base)))
	assert.Equal(t, ExitValidation, ExitCode(fmt.Errorf("wrapped: %w", Exit(ExitValidation, base))))
}

func TestCodeError_Unwrap(t *testing.T) {
	base := errors.New("boom")
	err := Exit(ExitDataErr, base)

	assert.ErrorIs(t, err, base)
	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, "exit status 2", Exit(ExitUsage, nil).Error())

	var codeErr *CodeError
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, ExitDataErr, codeErr.Code)
}
