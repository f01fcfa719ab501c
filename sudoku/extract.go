// Package sudoku: solution extraction.
package sudoku

import (
	"fmt"

	"github.com/katalvlaran/sudograph/store"
)

// Solution reads the solved grid back into a fresh 9×9 matrix by
// traversing the anchor's membership edges. Read-only; returns
// ErrNotSolved when the solved flag is down. Complexity: O(81).
func (p *Puzzle) Solution() (grid [][]int, err error) {
	tx := p.st.Begin()
	defer func() {
		if rerr := tx.Release(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	grid, err = p.solution(tx)
	if err != nil {
		return nil, err
	}
	tx.MarkSuccess()

	return grid, nil
}

// solution is the transaction-scoped body of Solution, shared with String.
func (p *Puzzle) solution(tx *store.Txn) ([][]int, error) {
	solved, err := getBool(tx, p.anchor, propSolved)
	if err != nil {
		return nil, err
	}
	if !solved {
		return nil, ErrNotSolved
	}

	cells, err := tx.Traverse(p.anchor, EdgeMember, store.Outgoing)
	if err != nil {
		return nil, fmt.Errorf("sudoku: traversing cells: %w", err)
	}

	grid := make([][]int, Size)
	for i := range grid {
		grid[i] = make([]int, Size)
	}
	for _, cell := range cells {
		row, rerr := getInt(tx, cell, propRow)
		if rerr != nil {
			return nil, rerr
		}
		col, cerr := getInt(tx, cell, propCol)
		if cerr != nil {
			return nil, cerr
		}
		val, verr := getInt(tx, cell, propValue)
		if verr != nil {
			return nil, verr
		}
		grid[row][col] = val
	}

	return grid, nil
}
