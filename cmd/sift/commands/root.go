// Package commands implements the CLI commands for the sift selection tool.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/sift/internal/app"
	"go.trai.ch/sift/internal/build"
)

// CLI represents the command line interface for sift.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "sift",
		Short:         "Static regression test selection for compiled class files",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("chdir", "C", "", "Change to this directory before loading sift.yaml")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if dir, _ := cmd.Flags().GetString("chdir"); dir != "" {
			return os.Chdir(dir)
		}
		return nil
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newSelectCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut redirects command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}
