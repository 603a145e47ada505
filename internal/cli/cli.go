// Package cli wires the treescan commands. Everything here consumes the
// tree's read-only query surface; the indexing itself lives in
// internal/tree.
package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// Execute parses the command line and runs the selected command.
func Execute(version string) error {
	var configPath string

	root := &cobra.Command{
		Use:     "treescan",
		Short:   "Inspect disk usage and find duplicate files",
		Version: version,
		Long: heredoc.Doc(`
			treescan builds an in-memory index of a directory tree and answers
			two questions about it: where the bytes are, and which files are
			exact copies of each other.

			The subtree is read once per invocation; nothing is cached between
			runs. Symlink handling is configurable ("symlinks" in the config
			file): by default any symlink aborts the scan.
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "treescan.yaml", "Config file path")

	root.AddCommand(newUsageCmd(&configPath))
	root.AddCommand(newDuplicateCmd(&configPath))
	root.AddCommand(newDigestCmd(&configPath))

	return root.Execute()
}

// targetPath returns the positional path argument, defaulting to the
// current directory.
func targetPath(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
