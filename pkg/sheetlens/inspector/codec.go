package inspector

import (
	"encoding/json"
	"fmt"

	"github.com/kgr-lab/sheetlens-go/pkg/sheetlens/models"
)

// serializedGrid is the wire form of a grid. Shape is carried
// explicitly so decoding can reject inconsistent payloads.
type serializedGrid struct {
	Rows  int                  `json:"rows"`
	Cols  int                  `json:"cols"`
	Cells [][]models.CellValue `json:"cells"`
}

// SerializeGrid encodes the grid as JSON, preserving shape and the
// exact kind of every cell so that DecodeGrid reconstructs an equal
// grid. No size limit is enforced; truncation for display is the
// caller's concern.
func SerializeGrid(g models.Grid, pretty bool) ([]byte, error) {
	sg := serializedGrid{
		Rows:  g.Rows(),
		Cols:  g.Cols(),
		Cells: make([][]models.CellValue, 0, g.Rows()),
	}
	for r := 0; r < g.Rows(); r++ {
		sg.Cells = append(sg.Cells, g.Row(r))
	}
	if pretty {
		return json.MarshalIndent(sg, "", "  ")
	}
	return json.Marshal(sg)
}

// DecodeGrid decodes a serialized grid, re-validating rectangularity.
// A payload whose rows disagree with the declared shape yields a
// *models.MalformedGridError.
func DecodeGrid(data []byte) (models.Grid, error) {
	var sg serializedGrid
	if err := json.Unmarshal(data, &sg); err != nil {
		return models.Grid{}, fmt.Errorf("decode grid: %w", err)
	}
	if len(sg.Cells) != sg.Rows {
		return models.Grid{}, fmt.Errorf("decode grid: payload declares %d rows but carries %d", sg.Rows, len(sg.Cells))
	}
	for i, row := range sg.Cells {
		if len(row) != sg.Cols {
			return models.Grid{}, &models.MalformedGridError{RowIndex: i, Got: len(row), Want: sg.Cols}
		}
	}
	return models.NewGrid(sg.Cells)
}
