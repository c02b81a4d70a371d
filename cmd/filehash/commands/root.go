// Package commands implements the CLI commands for filehash.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/filehash/internal/app"
	"go.trai.ch/filehash/internal/build"
	"go.trai.ch/filehash/internal/core/ports"
)

// Application is the set of operations the CLI dispatches to.
type Application interface {
	Snapshot(ctx context.Context, paths []string, opts app.SnapshotOptions) error
	Watch(ctx context.Context, root string, opts app.WatchOptions) error
	Clean(configPath string) error
}

// logSettings is implemented by loggers whose format and level can change.
type logSettings interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// CLI represents the command line interface for filehash.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command

	configPath string
	json       bool
	verbose    bool
}

// New creates a new CLI instance with the given app and logger.
func New(a Application, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "filehash",
		Short:         "Fingerprint files, rehashing only what changed",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Path to configuration file (default: discover filehash.yaml)")
	rootCmd.PersistentFlags().BoolVar(&c.json, "json", false, "Print results and logs as JSON")
	// -v belongs to --version.
	rootCmd.PersistentFlags().BoolVar(&c.verbose, "verbose", false, "Print debug messages")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if s, ok := c.logger.(logSettings); ok {
			s.SetJSON(c.json)
			s.SetVerbose(c.verbose)
		}
	}

	rootCmd.AddCommand(c.newSnapshotCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newCleanCmd())
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
