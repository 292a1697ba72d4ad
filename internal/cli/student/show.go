package student

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/studentdb/internal/cli"
	"github.com/thenoetrevino/studentdb/internal/cli/styles"
	"github.com/thenoetrevino/studentdb/internal/models"
	studentservice "github.com/thenoetrevino/studentdb/internal/services/student"
)

// ShowCmd returns the student show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single student by ID",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	addOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	id, err := studentservice.ParseID(args[0])
	if err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_ID", err, "Pass the numeric ID shown by 'studentdb student list'")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	s, found, err := cliInstance.App.StudentService.FindByID(ctx, id)
	if err != nil {
		return formatter.Fail(cli.ExitError, "STUDENT_FETCH_ERROR", err, "")
	}
	if !found {
		return formatter.Fail(cli.ExitNotFound, "STUDENT_NOT_FOUND", fmt.Errorf("%w: no student with ID: %d", models.ErrStudentNotFound, id),
			"Use 'studentdb student list' to see available students")
	}

	return formatter.Success(cli.Result{
		Fields: map[string]interface{}{"student": s},
		IDs:    []int{s.ID},
		Human: func() string {
			content := strings.Join([]string{
				styles.TitleStyle.Render(s.FirstName + " " + s.LastName),
				"",
				styles.RenderField("ID", strconv.Itoa(s.ID)),
				styles.RenderField("Age", strconv.Itoa(s.Age)),
				styles.RenderField("Email", s.Email),
			}, "\n")
			return styles.RenderCard(content)
		},
	})
}
