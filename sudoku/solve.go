// Package sudoku: stack-based backtracking solver.
package sudoku

import (
	"fmt"

	"github.com/katalvlaran/sudograph/store"
)

// Solve assigns every unassigned cell a value in [1,9] such that no
// conflict edge joins two equal values, using depth-first search with
// chronological backtracking, all inside one transaction.
//
// Idempotent: when the anchor's solved flag is already set, Solve returns
// nil without scanning. Returns ErrNoSolution when the grid as given is
// unsatisfiable; the failing transaction is released without success, so
// committed state is untouched. Concurrent calls on one Puzzle serialize.
// Complexity: worst case exponential in the number of unassigned cells.
func (p *Puzzle) Solve() (err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tx := p.st.Begin()
	defer func() {
		if rerr := tx.Release(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	// 1) Idempotence: an already-solved puzzle is left untouched.
	solved, err := getBool(tx, p.anchor, propSolved)
	if err != nil {
		return err
	}
	if solved {
		tx.MarkSuccess()
		return nil
	}

	// 2) Collect unassigned cells in membership-traversal (creation) order.
	//    LIFO pop then visits them in reverse creation order.
	cells, err := tx.Traverse(p.anchor, EdgeMember, store.Outgoing)
	if err != nil {
		return fmt.Errorf("sudoku: traversing cells: %w", err)
	}
	var pending []store.NodeID
	for _, cell := range cells {
		v, verr := getInt(tx, cell, propValue)
		if verr != nil {
			return verr
		}
		if v == 0 {
			pending = append(pending, cell)
		}
	}

	// committed holds successfully assigned cells in commit order; its top
	// is the assignment undone when a dead end is reached.
	committed := make([]store.NodeID, 0, len(pending))

	// 3) Main loop: pop, color, or backtrack.
	for len(pending) > 0 {
		cell := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		color, cerr := p.nextColor(tx, cell)
		if cerr != nil {
			return cerr
		}

		if color != 0 {
			if err = tx.SetProperty(cell, propValue, color); err != nil {
				return fmt.Errorf("sudoku: assigning cell %d: %w", cell, err)
			}
			committed = append(committed, cell)
			continue
		}

		// Dead end: reset the cell so its next visit scans from 1 again,
		// requeue it, and undo the most recent assignment.
		if err = tx.SetProperty(cell, propValue, 0); err != nil {
			return fmt.Errorf("sudoku: resetting cell %d: %w", cell, err)
		}
		pending = append(pending, cell)
		if len(committed) == 0 {
			return ErrNoSolution
		}
		pending = append(pending, committed[len(committed)-1])
		committed = committed[:len(committed)-1]
	}

	// 4) Every cell colored: raise the flag exactly once and commit.
	if err = tx.SetProperty(p.anchor, propSolved, true); err != nil {
		return fmt.Errorf("sudoku: marking solved: %w", err)
	}
	tx.MarkSuccess()

	return nil
}

// nextColor returns the lowest legal color for cell strictly above its
// current value, or 0 when no color in (current,9] survives the conflict
// neighbors. Scanning upward from the current value makes the search
// resumable: a cell revisited after backtracking continues above its
// previously failed assignment.
func (p *Puzzle) nextColor(tx *store.Txn, cell store.NodeID) (int, error) {
	current, err := getInt(tx, cell, propValue)
	if err != nil {
		return 0, err
	}
	neighbors, err := tx.Traverse(cell, EdgeConflict, store.Both)
	if err != nil {
		return 0, fmt.Errorf("sudoku: traversing conflicts of cell %d: %w", cell, err)
	}

	for color := current + 1; color <= MaxColor; color++ {
		taken := false
		for _, nb := range neighbors {
			v, verr := getInt(tx, nb, propValue)
			if verr != nil {
				return 0, verr
			}
			if v == color {
				taken = true
				break
			}
		}
		if !taken {
			return color, nil
		}
	}

	return 0, nil
}

// Solved reports whether the puzzle's anchor carries a raised solved flag,
// in its own read-only transaction.
func (p *Puzzle) Solved() (solved bool, err error) {
	tx := p.st.Begin()
	defer func() {
		if rerr := tx.Release(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	if solved, err = getBool(tx, p.anchor, propSolved); err != nil {
		return false, err
	}
	tx.MarkSuccess()

	return solved, nil
}
