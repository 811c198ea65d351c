package sheetlens

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/kgr-lab/sheetlens-go/pkg/sheetlens/inspector"
	"github.com/kgr-lab/sheetlens-go/pkg/sheetlens/models"
	"github.com/kgr-lab/sheetlens-go/pkg/sheetlens/provider"
)

// Inspect scans every sheet of a workbook for empty cells. A sheet
// that fails to read is logged and reported with zero dimensions;
// the remaining sheets are still inspected.
func Inspect(ctx context.Context, path string, opts Options) (*models.WorkbookReport, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	x, err := provider.OpenXLSX(path, opts.Logger)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	log := opts.logger()
	sheets := make(map[string]models.SheetReport)
	for _, name := range x.SheetNames() {
		g, err := x.Read(ctx, provider.WholeSheet(name))
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Warn("skipping sheet", zap.Error(&InspectionError{SheetName: name, Err: err}))
			sheets[name] = models.SheetReport{}
			continue
		}
		sheets[name] = models.SheetReport{
			Rows:  g.Rows(),
			Cols:  g.Cols(),
			Empty: inspector.ScanEmptyCells(g),
		}
	}

	return &models.WorkbookReport{
		BookName: filepath.Base(path),
		Sheets:   sheets,
	}, nil
}
