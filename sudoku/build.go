// Package sudoku: constraint-graph construction.
package sudoku

import (
	"fmt"
	"os"

	"github.com/katalvlaran/sudograph/store"
)

// Build validates grid and wires its constraint graph into st inside one
// committed transaction: an anchor node, 81 cell nodes row-major with
// membership edges, then one undirected conflict edge per unordered pair
// of cells sharing a row, column, or 3×3 box.
//
// grid must be 9×9 with entries in [0,9] (0 = unknown); violations return
// ErrBadDimensions or ErrValueOutOfRange before any transaction opens.
// Complexity: O(81²) pair scan, fixed-size.
func Build(st *store.Store, grid [][]int) (p *Puzzle, err error) {
	// 1) Configuration checks happen strictly before any graph mutation.
	if err = validateGrid(grid); err != nil {
		return nil, err
	}

	tx := st.Begin()
	defer func() {
		if rerr := tx.Release(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	// 2) Anchor node with the solved flag down.
	anchor, err := tx.CreateNode()
	if err != nil {
		return nil, fmt.Errorf("sudoku: creating anchor: %w", err)
	}
	if err = tx.SetProperty(anchor, propSolved, false); err != nil {
		return nil, fmt.Errorf("sudoku: initializing anchor: %w", err)
	}

	// 3) Cell nodes, row-major, each referenced by a membership edge.
	cells := make([]store.NodeID, 0, Size*Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			var cell store.NodeID
			if cell, err = tx.CreateNode(); err != nil {
				return nil, fmt.Errorf("sudoku: creating cell (%d,%d): %w", row, col, err)
			}
			if err = setCell(tx, cell, row, col, grid[row][col]); err != nil {
				return nil, err
			}
			if err = tx.CreateEdge(anchor, cell, EdgeMember); err != nil {
				return nil, fmt.Errorf("sudoku: linking cell (%d,%d): %w", row, col, err)
			}
			cells = append(cells, cell)
		}
	}

	// 4) Conflict edges: one undirected edge per unordered conflicting pair.
	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			if !conflicting(i/Size, i%Size, j/Size, j%Size) {
				continue
			}
			if err = tx.CreateEdge(cells[i], cells[j], EdgeConflict, store.Undirected()); err != nil {
				return nil, fmt.Errorf("sudoku: conflict edge %d-%d: %w", i, j, err)
			}
		}
	}

	tx.MarkSuccess()

	return &Puzzle{st: st, anchor: anchor}, nil
}

// BuildFile parses the puzzle file at path (see ParseProblem) and builds
// its constraint graph.
func BuildFile(st *store.Store, path string) (*Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sudoku: opening puzzle file: %w", err)
	}
	defer f.Close()

	grid, err := ParseProblem(f)
	if err != nil {
		return nil, err
	}

	return Build(st, grid)
}

// validateGrid enforces the 9×9 shape and the [0,9] value domain.
func validateGrid(grid [][]int) error {
	if len(grid) != Size {
		return ErrBadDimensions
	}
	for _, row := range grid {
		if len(row) != Size {
			return ErrBadDimensions
		}
		for _, v := range row {
			if v < 0 || v > MaxColor {
				return ErrValueOutOfRange
			}
		}
	}

	return nil
}

// setCell writes the immutable coordinates and the initial value of one cell.
func setCell(tx *store.Txn, cell store.NodeID, row, col, value int) error {
	if err := tx.SetProperty(cell, propRow, row); err != nil {
		return fmt.Errorf("sudoku: cell (%d,%d) row: %w", row, col, err)
	}
	if err := tx.SetProperty(cell, propCol, col); err != nil {
		return fmt.Errorf("sudoku: cell (%d,%d) col: %w", row, col, err)
	}
	if err := tx.SetProperty(cell, propValue, value); err != nil {
		return fmt.Errorf("sudoku: cell (%d,%d) value: %w", row, col, err)
	}

	return nil
}

// getInt reads an int property, unwrapping the store's value type.
func getInt(tx *store.Txn, id store.NodeID, key string) (int, error) {
	v, err := tx.GetProperty(id, key)
	if err != nil {
		return 0, fmt.Errorf("sudoku: reading %s of node %d: %w", key, id, err)
	}
	n, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("sudoku: property %s of node %d is %T, want int", key, id, v)
	}

	return n, nil
}

// getBool reads a bool property, unwrapping the store's value type.
func getBool(tx *store.Txn, id store.NodeID, key string) (bool, error) {
	v, err := tx.GetProperty(id, key)
	if err != nil {
		return false, fmt.Errorf("sudoku: reading %s of node %d: %w", key, id, err)
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("sudoku: property %s of node %d is %T, want bool", key, id, v)
	}

	return b, nil
}
