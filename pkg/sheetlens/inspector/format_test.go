package inspector

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kgr-lab/sheetlens-go/pkg/sheetlens/models"
)

func reportOf(positions ...models.Position) models.EmptyCellReport {
	return models.EmptyCellReport{Total: len(positions), Positions: positions}
}

func TestFormatForDisplayRendersOneBased(t *testing.T) {
	report := reportOf(models.Position{Row: 0, Col: 0}, models.Position{Row: 2, Col: 4})

	lines := FormatForDisplay(report, 10)
	assert.Equal(t, []string{"row 1, column 1", "row 3, column 5"}, lines)
}

func TestFormatForDisplayNoMarkerAtOrBelowLimit(t *testing.T) {
	report := reportOf(
		models.Position{Row: 0, Col: 0},
		models.Position{Row: 0, Col: 1},
		models.Position{Row: 0, Col: 2},
	)

	lines := FormatForDisplay(report, 3)
	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.NotContains(t, line, "more")
	}
}

func TestFormatForDisplayTruncates(t *testing.T) {
	positions := make([]models.Position, 7)
	for i := range positions {
		positions[i] = models.Position{Row: i, Col: 0}
	}

	lines := FormatForDisplay(reportOf(positions...), 5)
	assert.Len(t, lines, 6)
	assert.Equal(t, "row 5, column 1", lines[4])
	assert.Equal(t, "...and 2 more", lines[5])
}

func TestFormatForDisplayEmptyReport(t *testing.T) {
	lines := FormatForDisplay(models.EmptyCellReport{}, 5)
	assert.Empty(t, lines)
}

func TestFormatForDisplaySingleEmptyCell(t *testing.T) {
	lines := FormatForDisplay(reportOf(models.Position{Row: 0, Col: 0}), 5)
	assert.Equal(t, []string{"row 1, column 1"}, lines)
}
