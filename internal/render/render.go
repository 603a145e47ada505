// Package render turns a built file tree into indented text, one line per
// visited entry. It only reads through the tree's query surface.
package render

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"treescan/internal/size"
	"treescan/internal/tree"
)

// Order selects how a directory's children are visited.
type Order int

const (
	// Natural keeps the order the builder discovered the children in.
	Natural Order = iota
	// BySize visits children with the largest aggregate size first.
	// Equal sizes keep their relative discovery order.
	BySize
	// Lexicographic visits children in path order.
	Lexicographic
)

const defaultIndent = 2

// Options select the traversal policy for one rendering.
type Options struct {
	// Order picks the child visiting order.
	Order Order
	// Filter, when non-empty, emits a file line only if the path's
	// extension equals it (without the leading dot). Directories always
	// render so matching descendants stay reachable.
	Filter string
	// Indent is the number of spaces per depth level.
	Indent int
}

// Tree writes the subtree depth-first from the tree's root: aggregate
// size, depth-proportional indent, then the path.
func Tree(w io.Writer, t *tree.FileTree, opts Options) {
	if opts.Indent <= 0 {
		opts.Indent = defaultIndent
	}
	visit(w, t, t.Root(), 0, opts)
}

func visit(w io.Writer, t *tree.FileTree, path string, depth int, opts Options) {
	node, ok := t.Entry(path)
	if !ok {
		return
	}

	switch node := node.(type) {
	case tree.File:
		if opts.Filter != "" && !matchesExt(path, opts.Filter) {
			return
		}
		printNode(w, path, node.Size, depth, opts.Indent)

	case tree.Dir:
		total, _ := t.Size(path)
		printNode(w, path, total, depth, opts.Indent)

		children := node.Children
		switch opts.Order {
		case BySize:
			children = sortedBySize(t, children)
		case Lexicographic:
			children = sortedByPath(children)
		}

		for _, child := range children {
			visit(w, t, child, depth+1, opts)
		}
	}
}

func sortedBySize(t *tree.FileTree, children []string) []string {
	sorted := append([]string(nil), children...)
	sort.SliceStable(sorted, func(i, j int) bool {
		left, _ := t.Size(sorted[i])
		right, _ := t.Size(sorted[j])
		return left > right
	})
	return sorted
}

func sortedByPath(children []string) []string {
	sorted := append([]string(nil), children...)
	sort.Strings(sorted)
	return sorted
}

func matchesExt(path, filter string) bool {
	return strings.TrimPrefix(filepath.Ext(path), ".") == filter
}

func printNode(w io.Writer, path string, s size.Size, depth, indent int) {
	fmt.Fprintf(w, "%s%s  /%s\n", strings.Repeat(" ", depth*indent), s, path)
}
