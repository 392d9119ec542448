package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Pin every requirement against the package index and write the lockfile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, override, err := commandInputs(cmd)
			if err != nil {
				return err
			}

			res, err := c.app.Resolve(cmd.Context(), cwd, override)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range res.Lockfile.Names() {
				pin, _ := res.Lockfile.Get(name)
				_, _ = fmt.Fprintf(out, "%s %s\n", name, pin.Version)
			}
			_, _ = fmt.Fprintf(out, "pinned %d packages\n", res.Lockfile.Len())
			return nil
		},
	}
}
