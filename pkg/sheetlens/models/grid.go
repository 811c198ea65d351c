package models

import "fmt"

// MalformedGridError indicates a grid whose rows have inconsistent
// lengths. The grid is rejected as-is; short rows are never padded,
// since silently reshaping data would hide real structure problems
// from the user.
type MalformedGridError struct {
	// RowIndex is the 0-based index of the offending row.
	RowIndex int
	// Got is the offending row's length.
	Got int
	// Want is the expected row length (the first row's length).
	Want int
}

func (e *MalformedGridError) Error() string {
	return fmt.Sprintf("malformed grid: row %d has %d cells, want %d", e.RowIndex, e.Got, e.Want)
}

// Grid is a rectangular, immutable array of cell values. The zero
// value is a valid 0x0 grid.
type Grid struct {
	cells [][]CellValue
}

// NewGrid builds a Grid from rows of cells, validating rectangularity.
// Zero rows, or rows of zero cells, are valid. Returns a
// *MalformedGridError when row lengths differ.
func NewGrid(cells [][]CellValue) (Grid, error) {
	if len(cells) == 0 {
		return Grid{}, nil
	}
	want := len(cells[0])
	for i, row := range cells[1:] {
		if len(row) != want {
			return Grid{}, &MalformedGridError{RowIndex: i + 1, Got: len(row), Want: want}
		}
	}
	return Grid{cells: cells}, nil
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g.cells)
}

// Cols returns the number of columns, 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// Cell returns the value at the given 0-based row and column.
func (g Grid) Cell(row, col int) CellValue {
	return g.cells[row][col]
}

// Row returns the 0-based row. Callers must not mutate it.
func (g Grid) Row(row int) []CellValue {
	return g.cells[row]
}

// Equal reports whether two grids have the same shape and the same
// value and kind in every cell.
func (g Grid) Equal(other Grid) bool {
	if g.Rows() != other.Rows() || g.Cols() != other.Cols() {
		return false
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}
