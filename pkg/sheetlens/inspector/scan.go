// Package inspector implements the core sheet inspection logic:
// empty-cell scanning, grid serialization, and report formatting.
// Everything here is a pure function over in-memory grids; all I/O
// stays at the provider boundary.
package inspector

import "github.com/kgr-lab/sheetlens-go/pkg/sheetlens/models"

// ScanEmptyCells scans the grid in row-major order and reports every
// empty cell. Numeric zero and boolean false are values and are not
// reported. A grid with zero rows or zero columns yields a report
// with zero findings.
func ScanEmptyCells(g models.Grid) models.EmptyCellReport {
	var report models.EmptyCellReport
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.Cell(r, c).IsEmpty() {
				report.Positions = append(report.Positions, models.Position{Row: r, Col: c})
			}
		}
	}
	report.Total = len(report.Positions)
	return report
}
