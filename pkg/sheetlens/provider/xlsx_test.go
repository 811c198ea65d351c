package provider

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/kgr-lab/sheetlens-go/pkg/sheetlens/models"
)

// writeFixture builds a workbook with excelize and returns its path.
func writeFixture(t *testing.T, build func(f *excelize.File)) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	build(f)

	path := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadWholeSheetPadsTrimmedRows(t *testing.T) {
	path := writeFixture(t, func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A1", "Name")
		f.SetCellValue("Sheet1", "B1", "Score")
		f.SetCellValue("Sheet1", "A2", "alice")
		f.SetCellValue("Sheet1", "B2", 7)
		f.SetCellValue("Sheet1", "A3", "bob")
	})

	x, err := OpenXLSX(path, zap.NewNop())
	require.NoError(t, err)
	defer x.Close()

	g, err := x.Read(context.Background(), WholeSheet("Sheet1"))
	require.NoError(t, err)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 2, g.Cols())
	assert.Equal(t, models.Text("Name"), g.Cell(0, 0))
	assert.Equal(t, models.Number(7), g.Cell(1, 1))
	assert.Equal(t, models.Text("bob"), g.Cell(2, 0))
	assert.Equal(t, models.Empty(), g.Cell(2, 1), "the host trims B3; Read pads it back")
}

func TestReadExplicitRegion(t *testing.T) {
	path := writeFixture(t, func(f *excelize.File) {
		f.SetCellValue("Sheet1", "B2", "x")
		f.SetCellValue("Sheet1", "C3", 1.5)
	})

	x, err := OpenXLSX(path, zap.NewNop())
	require.NoError(t, err)
	defer x.Close()

	reg, err := ParseRegion("Sheet1!B2:C3")
	require.NoError(t, err)

	g, err := x.Read(context.Background(), reg)
	require.NoError(t, err)

	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 2, g.Cols())
	assert.Equal(t, models.Text("x"), g.Cell(0, 0))
	assert.Equal(t, models.Empty(), g.Cell(0, 1))
	assert.Equal(t, models.Empty(), g.Cell(1, 0))
	assert.Equal(t, models.Number(1.5), g.Cell(1, 1))
}

func TestReadEmptySheet(t *testing.T) {
	path := writeFixture(t, func(f *excelize.File) {})

	x, err := OpenXLSX(path, zap.NewNop())
	require.NoError(t, err)
	defer x.Close()

	g, err := x.Read(context.Background(), WholeSheet("Sheet1"))
	require.NoError(t, err)
	assert.Equal(t, 0, g.Rows())
	assert.Equal(t, 0, g.Cols())
}

func TestReadUnknownSheet(t *testing.T) {
	path := writeFixture(t, func(f *excelize.File) {})

	x, err := OpenXLSX(path, zap.NewNop())
	require.NoError(t, err)
	defer x.Close()

	_, err = x.Read(context.Background(), WholeSheet("Nope"))
	require.ErrorIs(t, err, ErrSheetNotFound)
}

func TestReadCanceledContext(t *testing.T) {
	path := writeFixture(t, func(f *excelize.File) {})

	x, err := OpenXLSX(path, zap.NewNop())
	require.NoError(t, err)
	defer x.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = x.Read(ctx, WholeSheet("Sheet1"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestWriteReadRoundTripPreservesKinds(t *testing.T) {
	want, err := models.NewGrid([][]models.CellValue{
		{models.Text("a"), models.Empty(), models.Number(3)},
		{models.Empty(), models.Text("123"), models.Bool(false)},
		{models.Number(0), models.Bool(true), models.Text("")},
	})
	require.NoError(t, err)

	x := NewXLSX(zap.NewNop())
	defer x.Close()

	target := Region{Sheet: "Sheet1", R1: 2, C1: 2, R2: 4, C2: 4}
	ctx := context.Background()
	require.NoError(t, x.Write(ctx, target, want))

	got, err := x.Read(ctx, target)
	require.NoError(t, err)

	// Text("") is written as nothing and reads back empty; every
	// other cell keeps value and kind.
	assert.Equal(t, models.Text("a"), got.Cell(0, 0))
	assert.Equal(t, models.Empty(), got.Cell(0, 1))
	assert.Equal(t, models.Number(3), got.Cell(0, 2))
	assert.Equal(t, models.Empty(), got.Cell(1, 0))
	assert.Equal(t, models.Text("123"), got.Cell(1, 1), "text that looks numeric stays text")
	assert.Equal(t, models.Bool(false), got.Cell(1, 2))
	assert.Equal(t, models.Number(0), got.Cell(2, 0))
	assert.Equal(t, models.Bool(true), got.Cell(2, 1))
	assert.Equal(t, models.Empty(), got.Cell(2, 2))
}

func TestWriteCreatesMissingSheet(t *testing.T) {
	g, err := models.NewGrid([][]models.CellValue{{models.Text("hi")}})
	require.NoError(t, err)

	x := NewXLSX(zap.NewNop())
	defer x.Close()

	require.NoError(t, x.Write(context.Background(), WholeSheet("Data"), g))
	assert.Contains(t, x.SheetNames(), "Data")

	got, err := x.Read(context.Background(), WholeSheet("Data"))
	require.NoError(t, err)
	assert.Equal(t, models.Text("hi"), got.Cell(0, 0))
}
