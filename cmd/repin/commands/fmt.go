package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Rewrite the manifest in canonical form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, override, err := commandInputs(cmd)
			if err != nil {
				return err
			}
			check, _ := cmd.Flags().GetBool("check")

			changed, err := c.app.Format(cmd.Context(), cwd, override, check)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if changed {
				_, _ = fmt.Fprintln(out, "manifest rewritten")
			} else {
				_, _ = fmt.Fprintln(out, "manifest already canonical")
			}
			return nil
		},
	}
	cmd.Flags().Bool("check", false, "Report formatting drift without rewriting the manifest")
	return cmd
}
