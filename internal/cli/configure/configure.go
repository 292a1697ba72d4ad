package configure

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/studentdb/internal/cli"
	"github.com/thenoetrevino/studentdb/internal/cli/styles"
	"github.com/thenoetrevino/studentdb/internal/config"
)

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	cmd.AddCommand(InitCmd())
	cmd.AddCommand(PathCmd())

	return cmd
}

// InitCmd returns the config init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		RunE:  runInit,
	}

	cmd.Flags().String("path", "", "Where to write the file (defaults to the config directory)")
	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	path, _ := cmd.Flags().GetString("path")
	force, _ := cmd.Flags().GetBool("force")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	formatter := &cli.OutputFormatter{JSON: jsonOutput}

	if path == "" {
		p, err := cli.ConfigPath(ctx)
		if err != nil {
			return formatter.Fail(cli.ExitError, "CONFIG_PATH_ERROR", err, "")
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil && !force {
		return formatter.Fail(cli.ExitUsage, "CONFIG_EXISTS",
			fmt.Errorf("config file %s already exists", path), "Pass --force to overwrite it")
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return formatter.Fail(cli.ExitError, "CONFIG_STAT_ERROR", err, "")
	}

	if err := config.Default().SaveTo(path); err != nil {
		return formatter.Fail(cli.ExitError, "CONFIG_WRITE_ERROR", err, "")
	}

	return formatter.Success(cli.Result{
		Fields: map[string]interface{}{"path": path},
		Human: func() string {
			return fmt.Sprintf("%s Wrote %s", styles.SuccessStyle.Render("✓"), path)
		},
	})
}

// PathCmd returns the config path subcommand
func PathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file location",
		Long: `Print the configuration file studentdb reads: the --config flag,
then $STUDENTDB_CONFIG, then $XDG_CONFIG_HOME/studentdb/config.yaml.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			path, err := cli.ConfigPath(ctx)
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
}
