package sudoku

import "errors"

// Sentinel errors for sudoku operations.
var (
	// ErrBadDimensions indicates the input matrix (or puzzle-file header) is not 9×9.
	ErrBadDimensions = errors.New("sudoku: grid must be 9x9")
	// ErrCellOutOfRange indicates a row or column coordinate outside [0,9).
	ErrCellOutOfRange = errors.New("sudoku: cell coordinates out of range")
	// ErrValueOutOfRange indicates a cell value outside [0,9].
	ErrValueOutOfRange = errors.New("sudoku: cell value out of range")
	// ErrNoSolution indicates backtracking exhausted every assignment: the
	// grid as given is unsatisfiable.
	ErrNoSolution = errors.New("sudoku: no solution found")
	// ErrNotSolved indicates a solution was requested before a successful Solve.
	ErrNotSolved = errors.New("sudoku: puzzle not solved yet")
)
