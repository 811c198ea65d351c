package provider

import (
	"context"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/kgr-lab/sheetlens-go/pkg/sheetlens/models"
)

// XLSX is a GridProvider backed by an xlsx workbook.
type XLSX struct {
	f   *excelize.File
	log *zap.Logger
}

// OpenXLSX opens an existing workbook.
func OpenXLSX(path string, log *zap.Logger) (*XLSX, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &XLSX{f: f, log: log}, nil
}

// NewXLSX creates a provider over a fresh, empty workbook.
func NewXLSX(log *zap.Logger) *XLSX {
	if log == nil {
		log = zap.NewNop()
	}
	return &XLSX{f: excelize.NewFile(), log: log}
}

// Close releases the underlying workbook.
func (x *XLSX) Close() error {
	return x.f.Close()
}

// SaveAs writes the workbook to the given path.
func (x *XLSX) SaveAs(path string) error {
	return x.f.SaveAs(path)
}

// SetSheetName renames a sheet.
func (x *XLSX) SetSheetName(old, name string) error {
	return x.f.SetSheetName(old, name)
}

// SheetNames returns the workbook's sheet names in workbook order.
func (x *XLSX) SheetNames() []string {
	return x.f.GetSheetList()
}

// Read materializes the region as a rectangular grid of typed cells.
// The host trims trailing empty cells from its row data; Read pads
// them back so every row has the region's width.
func (x *XLSX) Read(ctx context.Context, region Region) (models.Grid, error) {
	if err := ctx.Err(); err != nil {
		return models.Grid{}, err
	}
	if idx, err := x.f.GetSheetIndex(region.Sheet); err != nil || idx < 0 {
		return models.Grid{}, fmt.Errorf("%w: %q", ErrSheetNotFound, region.Sheet)
	}

	r1, c1, r2, c2 := region.R1, region.C1, region.R2, region.C2
	if region.IsWholeSheet() {
		rows, err := x.f.GetRows(region.Sheet)
		if err != nil {
			return models.Grid{}, fmt.Errorf("read sheet %q: %w", region.Sheet, err)
		}
		if len(rows) == 0 {
			return models.Grid{}, nil
		}
		r1, c1 = 1, 1
		r2 = len(rows)
		for _, row := range rows {
			if len(row) > c2 {
				c2 = len(row)
			}
		}
		if c2 == 0 {
			return models.Grid{}, nil
		}
	}

	cells := make([][]models.CellValue, 0, r2-r1+1)
	for r := r1; r <= r2; r++ {
		row := make([]models.CellValue, 0, c2-c1+1)
		for c := c1; c <= c2; c++ {
			v, err := x.readCell(region.Sheet, r, c)
			if err != nil {
				return models.Grid{}, err
			}
			row = append(row, v)
		}
		cells = append(cells, row)
	}

	g, err := models.NewGrid(cells)
	if err != nil {
		return models.Grid{}, err
	}
	x.log.Debug("read region",
		zap.String("region", region.String()),
		zap.Int("rows", g.Rows()),
		zap.Int("cols", g.Cols()))
	return g, nil
}

// Write places the grid into the workbook with its top-left cell at
// the region's first cell (A1 for a whole-sheet region). The sheet is
// created if missing. Empty cells are left unset.
func (x *XLSX) Write(ctx context.Context, region Region, g models.Grid) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if idx, err := x.f.GetSheetIndex(region.Sheet); err != nil || idx < 0 {
		if _, err := x.f.NewSheet(region.Sheet); err != nil {
			return fmt.Errorf("create sheet %q: %w", region.Sheet, err)
		}
	}

	r1, c1 := region.R1, region.C1
	if region.IsWholeSheet() {
		r1, c1 = 1, 1
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			v := g.Cell(r, c)
			if v.IsEmpty() {
				continue
			}
			name, err := excelize.CoordinatesToCellName(c1+c, r1+r)
			if err != nil {
				return err
			}
			if err := x.f.SetCellValue(region.Sheet, name, v.Native()); err != nil {
				return fmt.Errorf("write cell %s!%s: %w", region.Sheet, name, err)
			}
		}
	}
	x.log.Debug("wrote region",
		zap.String("sheet", region.Sheet),
		zap.Int("rows", g.Rows()),
		zap.Int("cols", g.Cols()))
	return nil
}

// readCell reads one cell as a typed value. The host hands back
// strings; booleans are recovered from the cell type and numbers by
// parsing, matching how values were stored.
func (x *XLSX) readCell(sheet string, row, col int) (models.CellValue, error) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.CellValue{}, err
	}
	raw, err := x.f.GetCellValue(sheet, name)
	if err != nil {
		return models.CellValue{}, fmt.Errorf("read cell %s!%s: %w", sheet, name, err)
	}
	if raw == "" {
		return models.Empty(), nil
	}

	ct, err := x.f.GetCellType(sheet, name)
	if err != nil {
		x.log.Warn("cell type lookup failed, treating as text",
			zap.String("cell", name), zap.Error(err))
		return models.Text(raw), nil
	}
	switch ct {
	case excelize.CellTypeBool:
		return models.Bool(raw == "TRUE"), nil
	case excelize.CellTypeInlineString, excelize.CellTypeSharedString:
		return models.Text(raw), nil
	default:
		// Number cells usually carry no explicit type attribute.
		return parseScalar(raw), nil
	}
}

// parseScalar maps a host string to a number when it parses as one,
// otherwise text.
func parseScalar(s string) models.CellValue {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.Number(f)
	}
	return models.Text(s)
}
