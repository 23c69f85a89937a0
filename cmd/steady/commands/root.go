// Package commands implements the CLI commands for steady.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/steady/internal/app"
	"go.trai.ch/steady/internal/build"
)

// CLI represents the command line interface for steady.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	opts    app.Options
}

// Application represents the application logic interface.
type Application interface {
	Configure(opts app.Options) error
	Close(ctx context.Context) error
	Replay(ctx context.Context, path string, opts app.ReplayOptions) (*app.Report, error)
	Watch(ctx context.Context, path string, opts app.ReplayOptions, onReport func(*app.Report)) error
	Inspect(ctx context.Context, path string) (*app.Inspection, error)
	Params() []app.ParamRow
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "steady",
		Short:         "Replay and inspect shared stabilization contexts",
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

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVar(&c.opts.ConfigPath, "config", "", "Path to the configuration file (default ./steady.yaml)")
	rootCmd.PersistentFlags().StringVar(&c.opts.LogFormat, "log-format", "", "Log format: auto, pretty, or json")

	rootCmd.AddCommand(c.newReplayCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newParamsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// configured wraps a RunE so the configuration is loaded first and tracing
// is flushed afterwards.
func (c *CLI) configured(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := c.app.Configure(c.opts); err != nil {
			return err
		}
		defer func() { _ = c.app.Close(context.WithoutCancel(cmd.Context())) }()
		return run(cmd, args)
	}
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
