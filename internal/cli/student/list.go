package student

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/studentdb/internal/cli"
	"github.com/thenoetrevino/studentdb/internal/cli/styles"
)

// ListCmd returns the student list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all students ordered by ID",
		Long: `List every student record in ascending ID order.

Examples:
  studentdb student list
  studentdb student list --json
  studentdb student list --quiet   # one ID per line
  studentdb student list --count   # number of stored students
`,
		RunE: runList,
	}

	cmd.Flags().Bool("count", false, "Print only the number of stored students")
	addOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	countOnly, _ := cmd.Flags().GetBool("count")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	if countOnly {
		n, err := cliInstance.App.StudentService.Count(ctx)
		if err != nil {
			return formatter.Fail(cli.ExitError, "STUDENT_COUNT_ERROR", err, "")
		}
		// a bare number is already quiet output
		formatter.Quiet = false
		return formatter.Success(cli.Result{
			Fields: map[string]interface{}{"count": n},
			Human:  func() string { return strconv.Itoa(n) },
		})
	}

	students, err := cliInstance.App.StudentService.ListAll(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "STUDENT_LIST_ERROR", err, "")
	}

	ids := make([]int, len(students))
	for i, s := range students {
		ids[i] = s.ID
	}

	return formatter.Success(cli.Result{
		Fields: map[string]interface{}{
			"students": students,
			"count":    len(students),
		},
		IDs: ids,
		Human: func() string {
			if len(students) == 0 {
				return styles.SubtitleStyle.Render("No students found")
			}
			return fmt.Sprintf("%s\nLoaded %d student(s)", styles.RenderStudentTable(students), len(students))
		},
	})
}
