package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newReposCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repos",
		Short: "List registered repository documents and their packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			statuses, err := c.app.Repositories(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(statuses) == 0 {
				_, _ = fmt.Fprintln(out, "no repositories registered")
				return nil
			}
			for _, status := range statuses {
				_, _ = fmt.Fprintln(out, status.Path)
				for _, pkg := range status.Packages {
					_, _ = fmt.Fprintf(out, "  %s\n", pkg)
				}
			}
			return nil
		},
	}
}
