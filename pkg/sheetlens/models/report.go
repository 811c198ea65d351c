package models

// Position locates a cell within a grid. Indices are 0-based
// internally; display layers render them 1-based.
type Position struct {
	// Row is the 0-based row index.
	Row int `json:"row"`
	// Col is the 0-based column index.
	Col int `json:"col"`
}

// EmptyCellReport lists the empty cells found in a grid, in row-major
// scan order. Built fresh per scan, never mutated afterwards.
type EmptyCellReport struct {
	// Total is the number of empty cells found. Always equals
	// len(Positions).
	Total int `json:"total"`
	// Positions holds the empty cell locations in scan order.
	Positions []Position `json:"positions,omitempty"`
}

// SheetReport summarizes the inspection of a single sheet.
type SheetReport struct {
	// Rows is the sheet's used-range row count.
	Rows int `json:"rows"`
	// Cols is the sheet's used-range column count.
	Cols int `json:"cols"`
	// Empty reports the empty cells within the used range.
	Empty EmptyCellReport `json:"empty"`
}

// WorkbookReport is the workbook-level container with per-sheet
// inspection results.
type WorkbookReport struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets maps sheet name to its report.
	Sheets map[string]SheetReport `json:"sheets"`
}
