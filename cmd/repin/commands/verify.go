package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that the lockfile matches the current manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, override, err := commandInputs(cmd)
			if err != nil {
				return err
			}

			if err := c.app.Verify(cmd.Context(), cwd, override); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "lockfile is up to date")
			return nil
		},
	}
}
