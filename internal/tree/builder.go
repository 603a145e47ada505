package tree

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"treescan/internal/hash"
	"treescan/internal/size"
)

// ErrUnsupportedEntry reports a filesystem entry that is neither a regular
// file nor a directory.
var ErrUnsupportedEntry = errors.New("unsupported entry type")

// errSkipped marks an entry left out of the index by the symlink policy.
// It never escapes Build.
var errSkipped = errors.New("entry skipped")

// SymlinkPolicy decides what the builder does when it meets a symbolic link.
type SymlinkPolicy string

const (
	// RejectSymlinks aborts the build on the first symlink, the same way
	// any other unsupported entry kind does.
	RejectSymlinks SymlinkPolicy = "reject"
	// SkipSymlinks leaves symlinks out of the index entirely: they are
	// never indexed and never listed as a directory's child.
	SkipSymlinks SymlinkPolicy = "skip"
)

// Options configure a tree build.
type Options struct {
	// Symlinks selects the symlink policy. Empty means RejectSymlinks.
	Symlinks SymlinkPolicy
	// OnFile, if non-nil, is called with each file path right after the
	// file has been indexed and signed.
	OnFile func(path string)
}

// FileTree is an immutable index of a filesystem subtree: every entry
// reachable from the root, keyed by path, plus a content signature for
// every file. It is built in one pass and never mutated afterwards; a
// changed filesystem needs a rebuild.
type FileTree struct {
	root  string
	index map[string]Node
	sigs  map[string]string
}

// Build walks the subtree rooted at root depth-first and indexes every
// entry in it. The walk is fail-fast: the first I/O error or unsupported
// entry aborts the whole build and no tree is returned. Filesystem error
// kinds stay observable through errors.Is on the returned error.
func Build(root string, opts Options) (*FileTree, error) {
	if opts.Symlinks == "" {
		opts.Symlinks = RejectSymlinks
	}

	t := &FileTree{
		root:  root,
		index: make(map[string]Node),
		sigs:  make(map[string]string),
	}

	node, err := t.explore(root, opts)
	if err != nil {
		if errors.Is(err, errSkipped) {
			return nil, fmt.Errorf("%s: root is a symlink: %w", root, ErrUnsupportedEntry)
		}
		return nil, err
	}
	t.index[root] = node

	return t, nil
}

// explore classifies one path and recurses into directories. Files record
// themselves in both maps; directory nodes are recorded by the frame that
// discovered them and again, identically, by the caller.
func (t *FileTree) explore(path string, opts Options) (Node, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}

	switch mode := info.Mode(); {
	case mode.IsRegular():
		sig, err := hash.Signature(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		node := File{Size: size.New(uint64(info.Size()))}
		t.index[path] = node
		t.sigs[path] = sig
		if opts.OnFile != nil {
			opts.OnFile(path)
		}
		return node, nil

	case mode.IsDir():
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}

		children := make([]string, 0, len(entries))
		for _, entry := range entries {
			childPath := filepath.Join(path, entry.Name())

			childNode, err := t.explore(childPath, opts)
			if err != nil {
				if errors.Is(err, errSkipped) {
					continue
				}
				return nil, err
			}

			t.index[childPath] = childNode
			children = append(children, childPath)
		}

		node := Dir{Children: children}
		t.index[path] = node
		return node, nil

	case mode&fs.ModeSymlink != 0 && opts.Symlinks == SkipSymlinks:
		return nil, errSkipped

	default:
		return nil, fmt.Errorf("%s: mode %s: %w", path, mode.Type(), ErrUnsupportedEntry)
	}
}
