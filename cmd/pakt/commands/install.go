package commands

import (
	"github.com/spf13/cobra"
	"go.pakt.dev/pakt/internal/app"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install [packages...]",
		Short: "Install packages into a project",
		Long: "Install one or more packages, given as id or id@version, into a " +
			"project of the current solution. Declared dependencies are " +
			"resolved and installed first.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			project, _ := cmd.Flags().GetString("project")
			prerelease, _ := cmd.Flags().GetBool("prerelease")
			ignoreDeps, _ := cmd.Flags().GetBool("ignore-dependencies")
			highest, _ := cmd.Flags().GetBool("highest")

			return c.app.Install(cmd.Context(), args, app.InstallOptions{
				Project:            project,
				Prerelease:         prerelease,
				IgnoreDependencies: ignoreDeps,
				Highest:            highest,
			})
		},
	}
	cmd.Flags().StringP("project", "p", "", "Target project (optional when the solution has exactly one)")
	cmd.Flags().Bool("prerelease", false, "Allow prerelease versions to satisfy dependency ranges")
	cmd.Flags().Bool("ignore-dependencies", false, "Install only the named packages, skipping their dependencies")
	cmd.Flags().Bool("highest", false, "Pick the highest satisfying dependency version instead of the lowest")
	return cmd
}
