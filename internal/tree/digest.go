package tree

import (
	"encoding/hex"
	"sort"

	mt "github.com/txaty/go-merkletree"

	"treescan/internal/hash"
)

// sigBlock feeds one path/signature pair into the merkle tree.
type sigBlock struct {
	path string
	sig  string
}

func (b sigBlock) Serialize() ([]byte, error) {
	return []byte(b.path + "\x00" + b.sig), nil
}

// Digest condenses the whole tree into one hex-encoded merkle root over
// the per-file signatures, sorted by path so the result depends only on
// the filesystem state. Two scans of identical content produce the same
// digest.
func (t *FileTree) Digest() (string, error) {
	paths := make([]string, 0, len(t.sigs))
	for path := range t.sigs {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	blocks := make([]mt.DataBlock, 0, len(paths))
	for _, path := range paths {
		blocks = append(blocks, sigBlock{path: path, sig: t.sigs[path]})
	}

	// go-merkletree needs at least two leaves
	switch len(blocks) {
	case 0:
		sum, err := hash.XXHashFunc([]byte("empty-tree"))
		if err != nil {
			return "", err
		}
		return hex.EncodeToString(sum), nil
	case 1:
		data, err := blocks[0].Serialize()
		if err != nil {
			return "", err
		}
		sum, err := hash.XXHashFunc(data)
		if err != nil {
			return "", err
		}
		return hex.EncodeToString(sum), nil
	}

	merkle, err := mt.New(&mt.Config{HashFunc: hash.XXHashFunc}, blocks)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(merkle.Root), nil
}
