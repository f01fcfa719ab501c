// Package sudoku: puzzle-file parsing.
//
// Format (one prefilled cell per record; omitted cells default to 0):
//
//	9,9
//	<row>,<col>,<value>
//	...
//
// Rows and columns are 0-based; values are 1-based (0 clears a cell).
package sudoku

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const dimensionHeader = "9,9"

// ParseProblem reads the line-based puzzle format from r into a 9×9
// matrix. The first non-empty line must be exactly "9,9"
// (ErrBadDimensions otherwise); each following line is a row,col,value
// triple with row,col in [0,9) (ErrCellOutOfRange) and value in [0,9]
// (ErrValueOutOfRange). Lines with fewer than three fields are skipped.
func ParseProblem(r io.Reader) ([][]int, error) {
	grid := make([][]int, Size)
	for i := range grid {
		grid[i] = make([]int, Size)
	}

	sc := bufio.NewScanner(r)

	// 1) Dimension header.
	header := ""
	for sc.Scan() {
		header = strings.TrimSpace(sc.Text())
		if header != "" {
			break
		}
	}
	if header != dimensionHeader {
		return nil, fmt.Errorf("%w: header %q", ErrBadDimensions, header)
	}

	// 2) Cell records.
	for sc.Scan() {
		fields := strings.Split(strings.TrimSpace(sc.Text()), ",")
		if len(fields) < 3 {
			continue
		}
		row, col, val, err := parseRecord(fields)
		if err != nil {
			return nil, err
		}
		grid[row][col] = val
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("sudoku: reading puzzle: %w", err)
	}

	return grid, nil
}

// ParseProblemFile opens path and parses it with ParseProblem.
func ParseProblemFile(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sudoku: opening puzzle file: %w", err)
	}
	defer f.Close()

	return ParseProblem(f)
}

// parseRecord validates one row,col,value triple.
func parseRecord(fields []string) (row, col, val int, err error) {
	if row, err = parseField(fields[0]); err != nil {
		return 0, 0, 0, err
	}
	if col, err = parseField(fields[1]); err != nil {
		return 0, 0, 0, err
	}
	if val, err = parseField(fields[2]); err != nil {
		return 0, 0, 0, err
	}
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return 0, 0, 0, fmt.Errorf("%w: (%d,%d)", ErrCellOutOfRange, row, col)
	}
	if val < 0 || val > MaxColor {
		return 0, 0, 0, fmt.Errorf("%w: %d at (%d,%d)", ErrValueOutOfRange, val, row, col)
	}

	return row, col, val, nil
}

// parseField converts one comma-separated field to an int.
func parseField(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("sudoku: malformed puzzle record field %q: %w", s, err)
	}

	return n, nil
}
