package cli

import (
	"fmt"
	"sort"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"treescan/internal/config"
	"treescan/internal/dup"
	"treescan/internal/size"
	"treescan/internal/tree"
)

func newDuplicateCmd(configPath *string) *cobra.Command {
	var (
		workers    int
		minSizeStr string
	)

	cmd := &cobra.Command{
		Use:   "duplicate [path]",
		Short: "Find files with identical content under the given path",
		Long: heredoc.Doc(`
			duplicate hashes every file under the given path (default ".") and
			groups paths whose content is byte-identical. Each group prints as
			a signature header followed by its member paths.

			--min-size drops groups of files smaller than the given threshold
			(e.g. 1KB), which cuts noise from empty and tiny files.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minSize, err := humanize.ParseBytes(minSizeStr)
			if err != nil {
				return fmt.Errorf("invalid min-size: %w", err)
			}

			cfg, err := config.LoadConfig(*configPath)
			if err != nil {
				return err
			}
			if workers == 0 {
				workers = cfg.Workers
			}

			t, err := buildTree(cfg, targetPath(args))
			if err != nil {
				return err
			}

			groups := dup.Groups(t.Signatures(), workers)

			// Stable presentation: groups by signature, members by path.
			// The grouper itself guarantees neither.
			sigs := make([]string, 0, len(groups))
			for sig, paths := range groups {
				if groupFileSize(t, paths).Bytes() < minSize {
					continue
				}
				sort.Strings(paths)
				sigs = append(sigs, sig)
			}
			sort.Strings(sigs)

			out := cmd.OutOrStdout()
			var redundant int
			var reclaimable uint64
			for _, sig := range sigs {
				paths := groups[sig]
				fmt.Fprintf(out, "Signature: %s\n", sig)
				for _, path := range paths {
					fmt.Fprintf(out, "  - %s\n", path)
				}

				redundant += len(paths) - 1
				reclaimable += uint64(len(paths)-1) * groupFileSize(t, paths).Bytes()
			}

			fmt.Fprintf(out, "\n%d duplicate groups, %d redundant files, %s reclaimable\n",
				len(sigs), redundant, humanize.IBytes(reclaimable))
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Grouping workers (0 = one per CPU)")
	cmd.Flags().StringVar(&minSizeStr, "min-size", "0B", "Ignore duplicates smaller than this size")

	return cmd
}

// groupFileSize returns the size of one member. Every member of a group
// has identical content, hence identical size.
func groupFileSize(t *tree.FileTree, paths []string) size.Size {
	if len(paths) == 0 {
		return 0
	}
	s, _ := t.Size(paths[0])
	return s
}
