package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"treescan/internal/config"
	"treescan/internal/render"
)

func newUsageCmd(configPath *string) *cobra.Command {
	var (
		lexicographic bool
		bySize        bool
		filter        string
	)

	cmd := &cobra.Command{
		Use:   "usage [path]",
		Short: "Show the disk usage tree for the given path",
		Long: heredoc.Doc(`
			usage renders the subtree under the given path (default ".") with
			one line per entry: aggregate size, indentation per depth level,
			and the path.

			Children print in discovery order unless --lexicographic-sort or
			--size-sort selects an ordering. --filter limits file lines to a
			single extension; directories always print so matching files
			deeper down stay visible.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*configPath)
			if err != nil {
				return err
			}

			t, err := buildTree(cfg, targetPath(args))
			if err != nil {
				return err
			}

			order := render.Natural
			switch {
			case bySize:
				order = render.BySize
			case lexicographic:
				order = render.Lexicographic
			}

			render.Tree(cmd.OutOrStdout(), t, render.Options{
				Order:  order,
				Filter: filter,
				Indent: cfg.Indent,
			})
			return nil
		},
	}

	cmd.Flags().BoolVar(&lexicographic, "lexicographic-sort", false, "Sort children by path")
	cmd.Flags().BoolVar(&bySize, "size-sort", false, "Sort children by descending aggregate size")
	cmd.Flags().StringVar(&filter, "filter", "", "Only show files with this extension (e.g. jpg)")

	return cmd
}
