package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/filehash/internal/app"
)

func (c *CLI) newSnapshotCmd() *cobra.Command {
	opts := app.SnapshotOptions{}

	cmd := &cobra.Command{
		Use:     "snapshot [paths...]",
		Aliases: []string{"hash"},
		Short:   "Print the content hash of files, directories and archives",
		Long: "Print the content hash of every file below the given paths (default: the current directory).\n" +
			"Hashes are cached by file size and modification time; unchanged files are not read again.\n" +
			"Paths may be glob patterns.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ConfigPath = c.configPath
			opts.JSON = c.json
			return c.app.Snapshot(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.ExpandArchives, "expand-archives", "x", false, "Hash the members of .zip archives instead of the archive file")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 0, "Number of files hashed in parallel (default: configured concurrency)")

	return cmd
}
