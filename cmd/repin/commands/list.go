package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List manifest requirements with their pinned versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, override, err := commandInputs(cmd)
			if err != nil {
				return err
			}

			res, err := c.app.List(cmd.Context(), cwd, override)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "PACKAGE\tCONSTRAINT\tPINNED")
			for _, req := range res.Requirements {
				name := req.CanonicalName()
				constraint := req.ConstraintString()
				if constraint == "" {
					constraint = "-"
				}
				pinned := res.Pins[name]
				if pinned == "" {
					pinned = "-"
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", name, constraint, pinned)
			}
			return w.Flush()
		},
	}
}
