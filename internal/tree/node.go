package tree

import "treescan/internal/size"

// Node is a single indexed filesystem entry. The variant is closed: every
// node is either a File or a Dir, and consumers switch exhaustively on the
// two cases.
type Node interface {
	isNode()
}

// File is a regular file with its stored byte size.
type File struct {
	Size size.Size
}

// Dir is a directory. Children holds the absolute paths of its immediate
// entries in discovery order; files have no children.
type Dir struct {
	Children []string
}

func (File) isNode() {}
func (Dir) isNode()  {}
