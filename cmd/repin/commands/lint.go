package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Check the manifest against the lint rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, override, err := commandInputs(cmd)
			if err != nil {
				return err
			}

			res, err := c.app.Lint(cmd.Context(), cwd, override)
			out := cmd.OutOrStdout()
			for _, f := range res.Findings {
				_, _ = fmt.Fprintf(out, "%s:%s\n", res.ManifestPath, f.String())
			}
			if err != nil {
				return err
			}

			if len(res.Findings) == 0 {
				_, _ = fmt.Fprintf(out, "%s: no findings\n", res.ManifestPath)
			}
			return nil
		},
	}
}
