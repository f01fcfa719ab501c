// Package sudoku: solution rendering.
package sudoku

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// unsolvedIndicator is what String renders before a successful Solve.
const unsolvedIndicator = "Unsolved Sudoku"

// FormatSolution writes grid as 9 lines of 9 space-separated digits.
func FormatSolution(w io.Writer, grid [][]int) error {
	for _, row := range grid {
		for col, v := range row {
			sep := " "
			if col == len(row)-1 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(w, "%d%s", v, sep); err != nil {
				return fmt.Errorf("sudoku: writing solution: %w", err)
			}
		}
	}

	return nil
}

// FormatGrid writes grid like FormatSolution but renders every cell that
// was prefilled in clues (nonzero there) in bold, so original clues stand
// out from solver assignments. Color output degrades to plain text on
// non-terminal writers.
func FormatGrid(w io.Writer, grid, clues [][]int) error {
	bold := color.New(color.Bold, color.FgCyan)
	for row := range grid {
		for col, v := range grid[row] {
			cell := fmt.Sprintf("%d", v)
			if len(clues) == Size && len(clues[row]) == Size && clues[row][col] != 0 {
				cell = bold.Sprint(cell)
			}
			sep := " "
			if col == len(grid[row])-1 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(w, "%s%s", cell, sep); err != nil {
				return fmt.Errorf("sudoku: writing grid: %w", err)
			}
		}
	}

	return nil
}

// String renders the solved grid, or the unsolved indicator when the
// solved flag is down. Store failures also render as the indicator; use
// Solution for error-aware extraction.
func (p *Puzzle) String() string {
	grid, err := p.Solution()
	if err != nil {
		return unsolvedIndicator
	}

	var b strings.Builder
	_ = FormatSolution(&b, grid)

	return b.String()
}
