// Package sudoku solves 9×9 Sudoku as a graph-coloring constraint problem
// over a store.Store: 81 cell nodes hang off one anchor node via membership
// edges, every pair of cells sharing a row, column, or 3×3 box is linked by
// an undirected conflict edge, and a stack-based backtracking solver colors
// the cells with 1..9 until no conflict edge joins two equal values.
//
// What:
//
//   - Build / BuildFile: validate a 9×9 matrix and wire the constraint graph
//     (anchor, 81 cells, membership edges, 810 conflict edges) in one
//     committed transaction.
//   - (*Puzzle).Solve: chronological backtracking over the conflict graph;
//     idempotent once the anchor's solved flag is set.
//   - (*Puzzle).Solution: read the solved grid back into a fresh matrix.
//   - ParseProblem / FormatSolution: the "9,9"-headed row,col,value file
//     format and the 9-line rendering.
//
// Why:
//
//   - Sudoku is the textbook instance of graph coloring on a fixed conflict
//     graph; expressing it against the store exercises transactional
//     consistency on every phase (build, solve, extract).
//
// Ordering:
//
//   - Unassigned cells are pushed in membership-traversal (creation) order
//     and popped LIFO, so the solver visits cells in reverse creation order.
//     Which of several valid colorings comes out depends on this order; any
//     valid coloring satisfies the contract.
//
// Complexity:
//
//   - Build: O(81²) pair scan, fixed-size.
//   - Solve: worst case exponential in the number of unassigned cells,
//     but bounded: the search space is finite, so unsatisfiable puzzles
//     terminate with ErrNoSolution rather than spin.
//   - Solution: O(81).
//
// Errors (sentinel):
//
//   - ErrBadDimensions, ErrCellOutOfRange, ErrValueOutOfRange — configuration
//     errors, raised before any transaction opens.
//   - ErrNoSolution — the grid as given is unsatisfiable.
//   - ErrNotSolved — Solution called before a successful Solve.
//   - store errors propagate wrapped; the transaction is released either way.
package sudoku
