package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/filehash/internal/adapters/watcher" //nolint:depguard // Default debounce window
	"go.trai.ch/filehash/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	opts := app.WatchOptions{}

	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Hash a directory, then rehash files as they change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			opts.ConfigPath = c.configPath
			opts.JSON = c.json
			return c.app.Watch(cmd.Context(), root, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 0, "Number of files hashed in parallel (default: configured concurrency)")
	cmd.Flags().DurationVar(&opts.Debounce, "debounce", watcher.DefaultDebounceWindow, "Time window coalescing file change events")

	return cmd
}
