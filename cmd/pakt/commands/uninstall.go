package commands

import (
	"github.com/spf13/cobra"
	"go.pakt.dev/pakt/internal/app"
)

func (c *CLI) newUninstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uninstall [packages...]",
		Short: "Uninstall packages from a project",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			project, _ := cmd.Flags().GetString("project")
			force, _ := cmd.Flags().GetBool("force")
			removeDeps, _ := cmd.Flags().GetBool("remove-dependencies")

			return c.app.Uninstall(cmd.Context(), args, app.UninstallOptions{
				Project:            project,
				Force:              force,
				RemoveDependencies: removeDeps,
			})
		},
	}
	cmd.Flags().StringP("project", "p", "", "Target project (optional when the solution has exactly one)")
	cmd.Flags().BoolP("force", "f", false, "Uninstall even if other installed packages still depend on it")
	cmd.Flags().Bool("remove-dependencies", false, "Also uninstall dependencies no remaining package needs")
	return cmd
}
