package student

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/studentdb/internal/cli"
	"github.com/thenoetrevino/studentdb/internal/models"
	studentservice "github.com/thenoetrevino/studentdb/internal/services/student"
	"github.com/thenoetrevino/studentdb/internal/testutil"
	clitest "github.com/thenoetrevino/studentdb/internal/testutil/cli"
)

func TestShowStudent(t *testing.T) {
	provider, app := clitest.SetupCLITest(t)
	clitest.CreateTestStudent(t, provider, testutil.Ada())
	graceID := clitest.CreateTestStudent(t, provider, testutil.Grace())

	t.Run("human readable", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"2"})

		require.NoError(t, err)
		assert.Contains(t, output, "Grace Hopper")
		assert.Contains(t, output, "grace@navy.mil")
	})

	t.Run("json", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"2", "--json"})
		require.NoError(t, err)

		var result struct {
			Student models.Student `json:"student"`
		}
		require.NoError(t, json.Unmarshal([]byte(output), &result))
		assert.Equal(t, testutil.Grace().WithID(graceID), result.Student)
	})

	t.Run("quiet", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"1", "--quiet"})

		require.NoError(t, err)
		assert.Equal(t, "1", strings.TrimSpace(output))
	})
}

func TestShowStudent_NotFound(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"99", "--json"})

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrStudentNotFound)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	assert.Contains(t, output, "STUDENT_NOT_FOUND")
}

func TestShowStudent_InvalidID(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"abc", "--json"})

	require.Error(t, err)
	assert.ErrorIs(t, err, studentservice.ErrInvalidID)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Contains(t, output, "INVALID_ID")
}

func TestStudentCmd_Subcommands(t *testing.T) {
	cmd := StudentCmd()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"add", "list", "show"}, names)
}
