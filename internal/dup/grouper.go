// Package dup groups file paths by content signature to find exact
// duplicates. The grouping is a partition / local-fold / merge pipeline
// over an immutable signature table: workers share nothing until the
// merge, and the merge is per-key concatenation, so the resulting set of
// groups does not depend on how the table was partitioned.
package dup

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

type pair struct {
	path string
	sig  string
}

// Groups partitions the signature table across workers and merges the
// per-worker results, keeping only signatures shared by two or more
// paths. Intra-group path order is unspecified. workers <= 0 means one
// worker per CPU.
func Groups(signatures map[string]string, workers int) map[string][]string {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// Snapshot the table so partitioning has a stable, indexable view.
	pairs := make([]pair, 0, len(signatures))
	for path, sig := range signatures {
		pairs = append(pairs, pair{path: path, sig: sig})
	}
	if len(pairs) == 0 {
		return map[string][]string{}
	}
	if workers > len(pairs) {
		workers = len(pairs)
	}

	// Fold phase: worker w owns the stripe w, w+W, w+2W, ... and appends
	// into a map nobody else touches.
	locals := make([]map[string][]string, workers)
	var group errgroup.Group
	for w := range workers {
		group.Go(func() error {
			local := make(map[string][]string)
			for i := w; i < len(pairs); i += workers {
				local[pairs[i].sig] = append(local[pairs[i].sig], pairs[i].path)
			}
			locals[w] = local
			return nil
		})
	}
	_ = group.Wait() // the fold cannot fail

	// Reduce phase: concatenate path lists per key. Keys present in only
	// one operand pass through unchanged.
	merged := make(map[string][]string)
	for _, local := range locals {
		for sig, paths := range local {
			merged[sig] = append(merged[sig], paths...)
		}
	}

	// Singleton signatures are not duplicates.
	groups := make(map[string][]string)
	for sig, paths := range merged {
		if len(paths) > 1 {
			groups[sig] = paths
		}
	}
	return groups
}
