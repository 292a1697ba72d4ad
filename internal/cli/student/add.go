package student

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/studentdb/internal/cli"
	"github.com/thenoetrevino/studentdb/internal/cli/styles"
	studentservice "github.com/thenoetrevino/studentdb/internal/services/student"
)

// AddCmd returns the student add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new student",
		Long: `Add a new student record. The store assigns the ID.

Examples:
  # Human-readable output
  studentdb student add --first=Ada --last=Lovelace --age=28 --email=ada@x.com

  # JSON output for scripts
  studentdb student add --first=Ada --last=Lovelace --age=28 --email=ada@x.com --json

  # Fill the fields in a form
  studentdb student add --interactive
`,
		RunE: runAdd,
	}

	cmd.Flags().String("first", "", "First name")
	cmd.Flags().String("last", "", "Last name")
	cmd.Flags().String("age", "", "Age (integer)")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().BoolP("interactive", "i", false, "Prompt for the fields in a form")

	addOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	in := studentservice.FormInput{}
	in.FirstName, _ = cmd.Flags().GetString("first")
	in.LastName, _ = cmd.Flags().GetString("last")
	in.Age, _ = cmd.Flags().GetString("age")
	in.Email, _ = cmd.Flags().GetString("email")
	interactive, _ := cmd.Flags().GetBool("interactive")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	if interactive {
		if err := AddForm(&in).RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return formatter.Fail(cli.ExitError, "FORM_ERROR", err, "")
		}
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

	ok, err := cliInstance.App.StudentService.Add(ctx, in)
	if err != nil {
		var vErr *studentservice.ValidationError
		if errors.As(err, &vErr) {
			return formatter.Fail(cli.ExitValidation, "VALIDATION_ERROR", err,
				"Pass --first, --last, --age and --email, with a whole number for --age")
		}
		return formatter.Fail(cli.ExitError, "STUDENT_CREATE_ERROR", err, "")
	}
	if !ok {
		return formatter.Fail(cli.ExitDataErr, "STUDENT_NOT_CREATED", errors.New("failed to add student"), "")
	}

	candidate, _ := studentservice.ParseCandidate(in)

	return formatter.Success(cli.Result{
		Fields: map[string]interface{}{"student": candidate},
		Human: func() string {
			return fmt.Sprintf("%s Student %s %s added", styles.SuccessStyle.Render("✓"), candidate.FirstName, candidate.LastName)
		},
	})
}

// AddForm builds the interactive form for the four add fields
func AddForm(in *studentservice.FormInput) *huh.Form {
	required := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(studentservice.MsgFieldsRequired)
		}
		return nil
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("first").
				Title("First Name").
				Validate(required).
				Value(&in.FirstName),
			huh.NewInput().
				Key("last").
				Title("Last Name").
				Validate(required).
				Value(&in.LastName),
			huh.NewInput().
				Key("age").
				Title("Age").
				Validate(func(s string) error {
					if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
						return errors.New(studentservice.MsgAgeNotNumber)
					}
					return nil
				}).
				Value(&in.Age),
			huh.NewInput().
				Key("email").
				Title("Email").
				Validate(required).
				Value(&in.Email),
		),
	)
}
