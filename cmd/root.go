package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/studentdb/internal/cli"
	"github.com/thenoetrevino/studentdb/internal/cli/configure"
	"github.com/thenoetrevino/studentdb/internal/cli/student"
	"github.com/thenoetrevino/studentdb/internal/cli/styles"
	"github.com/thenoetrevino/studentdb/internal/config"
	"github.com/thenoetrevino/studentdb/internal/launcher"
	"github.com/thenoetrevino/studentdb/internal/logging"
)

// NewRootCmd builds the studentdb command tree.
// Running it without a subcommand opens the interactive form.
func NewRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "studentdb",
		Short: "studentdb - manage student records from the terminal",
		Long: `studentdb keeps a roster of student records in a local SQLite database.

Run it without arguments for the interactive form, or use the student
subcommands from scripts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFrom(configPath)
			if err != nil {
				return err
			}
			if err := logging.Init(cfg.Log.Level); err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}
			styles.Init(cfg.ColorScheme)
			ctx := cli.WithConfigPath(cmd.Context(), configPath)
			cmd.SetContext(cli.WithConfig(ctx, cfg))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.ConfigFromContext(cmd.Context())
			if err != nil {
				return err
			}
			return launcher.Launch(cmd.Context(), cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/studentdb/config.yaml)")

	rootCmd.AddCommand(student.StudentCmd())
	rootCmd.AddCommand(configure.ConfigCmd())

	return rootCmd
}

// Execute runs the root command under ctx
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
