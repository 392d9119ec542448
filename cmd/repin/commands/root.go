// Package commands implements the CLI commands for the repin requirements tool.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/repin-dev/repin/internal/app"
	"github.com/repin-dev/repin/internal/build"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for repin.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Lint(ctx context.Context, cwd, manifestOverride string) (app.LintResult, error)
	Resolve(ctx context.Context, cwd, manifestOverride string) (app.ResolveResult, error)
	Verify(ctx context.Context, cwd, manifestOverride string) error
	Format(ctx context.Context, cwd, manifestOverride string, check bool) (bool, error)
	List(ctx context.Context, cwd, manifestOverride string) (app.ListResult, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "repin",
		Short:         "A linter, formatter and version pinner for pip requirements manifests",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("manifest", "f", "", "Path to the requirements manifest (defaults to discovery)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newLintCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newVerifyCmd())
	rootCmd.AddCommand(c.newFmtCmd())
	rootCmd.AddCommand(c.newListCmd())
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

// commandInputs extracts the working directory and manifest override shared
// by every manifest-facing command.
func commandInputs(cmd *cobra.Command) (cwd, manifestOverride string, err error) {
	cwd, err = os.Getwd()
	if err != nil {
		return "", "", err
	}
	manifestOverride, _ = cmd.Flags().GetString("manifest")
	return cwd, manifestOverride, nil
}
