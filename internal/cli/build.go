package cli

import (
	"io/fs"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"

	"treescan/internal/config"
	"treescan/internal/progress"
	"treescan/internal/tree"
)

// countFiles makes a quick parallel pre-pass so the progress bar knows its
// total before the real single-pass build starts. Errors are ignored here;
// the build itself surfaces them.
func countFiles(root string) int64 {
	var count atomic.Int64

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}
	err := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			count.Add(1)
		}
		return nil
	})
	if err != nil {
		return 0
	}

	return count.Load()
}

// buildTree indexes the subtree under path with a progress bar attached.
func buildTree(cfg *config.Config, path string) (*tree.FileTree, error) {
	bar := progress.New(countFiles(path))
	defer bar.Finish()

	return tree.Build(path, tree.Options{
		Symlinks: tree.SymlinkPolicy(cfg.Symlinks),
		OnFile:   bar.Step,
	})
}
