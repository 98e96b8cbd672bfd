package model

import "github.com/mj1618/window-viewer/internal/platform"

// MaxAncestorDepth bounds the walk on corrupted or pathological window trees.
const MaxAncestorDepth = 64

// NextAncestor returns h's parent, or its owner when it has no parent.
func NextAncestor(q platform.WindowQuerier, h platform.Handle) platform.Handle {
	if next := q.Parent(h); next != 0 {
		return next
	}
	return q.Owner(h)
}

// WalkAncestors returns snapshots from h up to its root window: index 0 is h
// itself, each following entry is the previous entry's parent (or owner).
// The walk stops at a window with no parent or owner, at a window that
// points back into the chain, or after MaxAncestorDepth entries.
func WalkAncestors(q platform.WindowQuerier, h platform.Handle) []Snapshot {
	if h == 0 {
		return nil
	}
	var chain []Snapshot
	seen := make(map[platform.Handle]bool)
	cur := h
	for len(chain) < MaxAncestorDepth {
		chain = append(chain, NewSnapshot(q, cur))
		seen[cur] = true

		next := NextAncestor(q, cur)
		if next == 0 || seen[next] {
			break
		}
		cur = next
	}
	return chain
}
