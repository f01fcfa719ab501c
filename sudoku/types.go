// Package sudoku: core types and graph-schema constants.
package sudoku

import (
	"sync"

	"github.com/katalvlaran/sudograph/store"
)

const (
	// Size is the grid side length; a puzzle always has Size×Size cells.
	Size = 9
	// BoxSize is the side length of one 3×3 box.
	BoxSize = 3
	// MaxColor is the highest assignable cell value; 0 means unassigned.
	MaxColor = 9
	// ConflictDegree is the number of conflict neighbors of every cell:
	// 8 row peers + 8 column peers + 4 box peers not already counted.
	ConflictDegree = 20
)

// Graph schema: edge types and property keys used on the store.
const (
	// EdgeMember links the anchor to each of its 81 cells (directed).
	EdgeMember store.EdgeType = "member"
	// EdgeConflict links two cells that must hold different values (undirected).
	EdgeConflict store.EdgeType = "conflict"

	propRow    = "row"
	propCol    = "col"
	propValue  = "value"
	propSolved = "solved"
)

// Puzzle is a handle on one constraint graph inside a store: the anchor
// node plus the 81 cells reachable over its membership edges. Build is the
// only constructor; the zero value is unusable.
//
// A Puzzle is safe for concurrent use: Solve serializes callers on an
// internal mutex and re-checks the solved flag inside its transaction, so
// a concurrent second call takes the idempotence path.
type Puzzle struct {
	st     *store.Store
	anchor store.NodeID

	mu sync.Mutex // single-writer guard for Solve
}

// Anchor returns the NodeID of the puzzle's anchor node.
func (p *Puzzle) Anchor() store.NodeID {
	return p.anchor
}

// Attach re-creates a Puzzle handle for an anchor that already exists in
// the store, e.g. after reopening a persisted store.
func Attach(st *store.Store, anchor store.NodeID) *Puzzle {
	return &Puzzle{st: st, anchor: anchor}
}

// boxOf maps a coordinate to its 3×3 box index.
func boxOf(n int) int {
	return n / BoxSize
}

// conflicting reports whether two distinct cells constrain each other:
// same column, same row, or same box.
func conflicting(rowA, colA, rowB, colB int) bool {
	if colA == colB || rowA == rowB {
		return true
	}

	return boxOf(colA) == boxOf(colB) && boxOf(rowA) == boxOf(rowB)
}
