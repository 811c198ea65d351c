// Package provider supplies grids from spreadsheet hosts. The
// inspector core never touches a host directly; it consumes grids
// produced here.
package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kgr-lab/sheetlens-go/pkg/sheetlens/models"
)

// ErrSheetNotFound indicates the requested sheet does not exist in
// the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// GridProvider reads a rectangular grid for a region. Read is the
// single suspension point between a host and the inspector; the
// returned grid is fully materialized and the inspector runs
// synchronously over it.
type GridProvider interface {
	Read(ctx context.Context, region Region) (models.Grid, error)
}

// Region addresses a rectangular area of a worksheet. Bounds are
// 1-based and inclusive; all-zero bounds select the sheet's whole
// used range.
type Region struct {
	Sheet          string
	R1, C1, R2, C2 int
}

// WholeSheet returns a region covering the sheet's used range.
func WholeSheet(sheet string) Region {
	return Region{Sheet: sheet}
}

// IsWholeSheet reports whether the region selects the whole used
// range.
func (r Region) IsWholeSheet() bool {
	return r.R1 == 0
}

// String renders the region in A1 notation.
func (r Region) String() string {
	if r.IsWholeSheet() {
		return r.Sheet
	}
	start, _ := excelize.CoordinatesToCellName(r.C1, r.R1)
	end, _ := excelize.CoordinatesToCellName(r.C2, r.R2)
	return fmt.Sprintf("%s!%s:%s", r.Sheet, start, end)
}

// ParseRegion parses "Sheet1!A1:C5", "Sheet1!B3", or a bare sheet
// name. Quoted sheet names ('My Sheet'!A1:B2) are unquoted. Reversed
// corners are normalized so R1<=R2 and C1<=C2.
func ParseRegion(s string) (Region, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Region{}, errors.New("empty region")
	}

	bang := strings.LastIndex(s, "!")
	if bang < 0 {
		return Region{Sheet: unquoteSheet(s)}, nil
	}
	sheet := unquoteSheet(s[:bang])
	if sheet == "" {
		return Region{}, fmt.Errorf("region %q: empty sheet name", s)
	}

	ref := s[bang+1:]
	start, end := ref, ref
	if colon := strings.Index(ref, ":"); colon >= 0 {
		start, end = ref[:colon], ref[colon+1:]
	}

	c1, r1, err := excelize.CellNameToCoordinates(start)
	if err != nil {
		return Region{}, fmt.Errorf("region %q: %w", s, err)
	}
	c2, r2, err := excelize.CellNameToCoordinates(end)
	if err != nil {
		return Region{}, fmt.Errorf("region %q: %w", s, err)
	}

	if r1 > r2 {
		r1, r2 = r2, r1
	}
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	return Region{Sheet: sheet, R1: r1, C1: c1, R2: r2, C2: c2}, nil
}

func unquoteSheet(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		s = s[1 : len(s)-1]
	}
	return s
}
