// Package sudoku_test: shared fixtures and validity checkers.
package sudoku_test

import (
	"testing"

	"github.com/katalvlaran/sudograph/store"
	"github.com/katalvlaran/sudograph/sudoku"
)

// newStore opens an in-memory store closed at test end.
func newStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open()
	if err != nil {
		t.Fatalf("store.Open error: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	return st
}

// emptyGrid returns an all-zero 9×9 matrix.
func emptyGrid() [][]int {
	g := make([][]int, sudoku.Size)
	for i := range g {
		g[i] = make([]int, sudoku.Size)
	}

	return g
}

// classicPuzzle is a well-known solvable puzzle with 30 clues.
func classicPuzzle() [][]int {
	return [][]int{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}
}

// checkValidSolution fails the test unless grid is a complete Sudoku
// solution: every row, column, and 3×3 box holds each of 1..9 exactly once.
func checkValidSolution(t *testing.T, grid [][]int) {
	t.Helper()
	if len(grid) != sudoku.Size {
		t.Fatalf("solution has %d rows; want %d", len(grid), sudoku.Size)
	}

	checkGroup := func(name string, cells [][2]int) {
		var seen [sudoku.MaxColor + 1]int
		for _, rc := range cells {
			v := grid[rc[0]][rc[1]]
			if v < 1 || v > sudoku.MaxColor {
				t.Fatalf("%s: cell (%d,%d) holds %d; want 1..9", name, rc[0], rc[1], v)
			}
			seen[v]++
		}
		for v := 1; v <= sudoku.MaxColor; v++ {
			if seen[v] != 1 {
				t.Errorf("%s: value %d appears %d times; want exactly once", name, v, seen[v])
			}
		}
	}

	for i := 0; i < sudoku.Size; i++ {
		var row, col [][2]int
		for j := 0; j < sudoku.Size; j++ {
			row = append(row, [2]int{i, j})
			col = append(col, [2]int{j, i})
		}
		checkGroup("row", row)
		checkGroup("column", col)
	}
	for br := 0; br < sudoku.Size; br += sudoku.BoxSize {
		for bc := 0; bc < sudoku.Size; bc += sudoku.BoxSize {
			var box [][2]int
			for r := br; r < br+sudoku.BoxSize; r++ {
				for c := bc; c < bc+sudoku.BoxSize; c++ {
					box = append(box, [2]int{r, c})
				}
			}
			checkGroup("box", box)
		}
	}
}
