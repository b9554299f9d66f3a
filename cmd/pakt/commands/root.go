// Package commands implements the CLI commands for the pakt package manager.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.pakt.dev/pakt/internal/app"
	"go.pakt.dev/pakt/internal/build"
	"go.pakt.dev/pakt/internal/core/ports"
)

// CLI represents the command line interface for pakt.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Install(ctx context.Context, refs []string, opts app.InstallOptions) error
	Uninstall(ctx context.Context, refs []string, opts app.UninstallOptions) error
	Repositories(ctx context.Context) ([]app.RepositoryStatus, error)
}

// New creates a new CLI instance with the given app.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pakt",
		Short:         "A solution-level package manager",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolP("yes", "y", false, "Apply resolved actions without asking for confirmation")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if l, ok := c.logger.(interface{ SetVerbose(bool) }); ok {
			l.SetVerbose(verbose)
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if gated, ok := c.app.(interface {
			WithApproval(app.ApprovalFunc) *app.App
		}); ok {
			gated.WithApproval(promptApproval(cmd.InOrStdin(), cmd.ErrOrStderr(), yes))
		}
	}

	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newUninstallCmd())
	rootCmd.AddCommand(c.newReposCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
