package inspector

import (
	"fmt"

	"github.com/kgr-lab/sheetlens-go/pkg/sheetlens/models"
)

// FormatForDisplay renders up to maxItems positions from the report as
// 1-based "row R, column C" lines, in the report's order. When the
// report holds more entries than maxItems, a trailing "...and N more"
// line is appended with N = total - maxItems.
func FormatForDisplay(report models.EmptyCellReport, maxItems int) []string {
	if maxItems < 0 {
		maxItems = 0
	}
	n := len(report.Positions)
	shown := n
	if shown > maxItems {
		shown = maxItems
	}
	lines := make([]string, 0, shown+1)
	for _, p := range report.Positions[:shown] {
		lines = append(lines, fmt.Sprintf("row %d, column %d", p.Row+1, p.Col+1))
	}
	if report.Total > maxItems {
		lines = append(lines, fmt.Sprintf("...and %d more", report.Total-maxItems))
	}
	return lines
}
