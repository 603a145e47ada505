package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"treescan/internal/config"
)

func newDigestCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digest [path]",
		Short: "Print a single hash summarizing the subtree's content",
		Long: heredoc.Doc(`
			digest condenses every file signature under the given path
			(default ".") into one merkle root. Two runs print the same value
			exactly when the indexed content is identical, so the output can
			be compared across machines or points in time without keeping the
			scans themselves.
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

			digest, err := t.Digest()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), digest)
			return nil
		},
	}

	return cmd
}
