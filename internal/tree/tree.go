package tree

import (
	"iter"

	"treescan/internal/size"
)

// Root returns the path the tree was built from. It is always indexed.
func (t *FileTree) Root() string {
	return t.root
}

// Entry returns the node recorded for path, if any.
func (t *FileTree) Entry(path string) (Node, bool) {
	node, ok := t.index[path]
	return node, ok
}

// Children returns a directory's immediate children in discovery order.
// The second return is false for files and for unknown paths; neither is
// an error.
func (t *FileTree) Children(path string) ([]string, bool) {
	if dir, ok := t.index[path].(Dir); ok {
		return dir.Children, true
	}
	return nil, false
}

// Size returns the stored size of a file, or the aggregate size of a
// directory: the recursive sum over its children, recomputed from scratch
// on every call. Unknown paths return false.
func (t *FileTree) Size(path string) (size.Size, bool) {
	switch node := t.index[path].(type) {
	case File:
		return node.Size, true
	case Dir:
		var total size.Size
		for _, child := range node.Children {
			if childSize, ok := t.Size(child); ok {
				total = total.Add(childSize)
			}
		}
		return total, true
	default:
		return 0, false
	}
}

// Files yields the path of every file in the index. Order follows the
// index's internal iteration order and varies between runs.
func (t *FileTree) Files() iter.Seq[string] {
	return func(yield func(string) bool) {
		for path, node := range t.index {
			if _, ok := node.(File); ok {
				if !yield(path) {
					return
				}
			}
		}
	}
}

// Signatures returns the content signature of every file, keyed by path.
// The map is the tree's own and must be treated as read-only.
func (t *FileTree) Signatures() map[string]string {
	return t.sigs
}
