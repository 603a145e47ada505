package tree

import (
	"path/filepath"
	"testing"
)

func TestRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", 1)

	tree, err := Build(root, Options{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if tree.Root() != root {
		t.Errorf("Expected root %s, got %s", root, tree.Root())
	}
	if _, ok := tree.Entry(root); !ok {
		t.Error("The root should always be indexed")
	}
}

func TestChildren_AbsentForFilesAndUnknownPaths(t *testing.T) {
	root := t.TempDir()
	file := writeFile(t, root, "a.txt", 1)

	tree, err := Build(root, Options{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if _, ok := tree.Children(file); ok {
		t.Error("Children should be absent for a file")
	}
	if _, ok := tree.Children(filepath.Join(root, "nope")); ok {
		t.Error("Children should be absent for an unknown path")
	}
}

func TestEntry_Variants(t *testing.T) {
	root := t.TempDir()
	file := writeFile(t, root, "sub/a.txt", 7)

	tree, err := Build(root, Options{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	node, ok := tree.Entry(file)
	if !ok {
		t.Fatal("Entry should be present for the file")
	}
	f, ok := node.(File)
	if !ok {
		t.Fatalf("Expected a File node, got %T", node)
	}
	if f.Size.Bytes() != 7 {
		t.Errorf("Expected stored size 7, got %d", f.Size.Bytes())
	}

	node, ok = tree.Entry(filepath.Join(root, "sub"))
	if !ok {
		t.Fatal("Entry should be present for the directory")
	}
	if _, ok := node.(Dir); !ok {
		t.Fatalf("Expected a Dir node, got %T", node)
	}
}

func TestSize_UnknownPath(t *testing.T) {
	root := t.TempDir()

	tree, err := Build(root, Options{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if _, ok := tree.Size(filepath.Join(root, "missing")); ok {
		t.Error("Size should be absent for an unknown path")
	}
}

func TestSize_EmptyDirectory(t *testing.T) {
	root := t.TempDir()

	tree, err := Build(root, Options{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	s, ok := tree.Size(root)
	if !ok {
		t.Fatal("Size should be present for the root")
	}
	if s.Bytes() != 0 {
		t.Errorf("Expected empty directory size 0, got %d", s.Bytes())
	}
}

func TestFiles_YieldsOnlyFiles(t *testing.T) {
	root := t.TempDir()
	fileA := writeFile(t, root, "a.txt", 1)
	fileB := writeFile(t, root, "sub/b.txt", 1)

	tree, err := Build(root, Options{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	seen := make(map[string]bool)
	for path := range tree.Files() {
		seen[path] = true
	}

	if !seen[fileA] || !seen[fileB] {
		t.Errorf("Files should yield both files, got %v", seen)
	}
	if seen[filepath.Join(root, "sub")] {
		t.Error("Files should not yield directories")
	}
	if len(seen) != 2 {
		t.Errorf("Expected 2 files, got %d", len(seen))
	}
}

func TestFiles_EarlyStop(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", 1)
	writeFile(t, root, "b.txt", 1)
	writeFile(t, root, "c.txt", 1)

	tree, err := Build(root, Options{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	count := 0
	for range tree.Files() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("Expected iteration to stop after 1 file, got %d", count)
	}
}
