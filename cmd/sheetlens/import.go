package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kgr-lab/sheetlens-go/pkg/sheetlens/inspector"
	"github.com/kgr-lab/sheetlens-go/pkg/sheetlens/provider"
)

func newImportCommand() *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "import [grid.json] [book.xlsx]",
		Short: "Write a serialized grid into a workbook",
		Long: `import decodes a grid produced by export and writes it into a
workbook, creating the workbook and sheet as needed. The grid's
top-left cell lands on the region's first cell (A1 by default).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			gridPath, bookPath := args[0], args[1]
			log := buildLogger()
			defer log.Sync()

			data, err := os.ReadFile(gridPath)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			g, err := inspector.DecodeGrid(data)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}

			reg, err := importRegion(region)
			if err != nil {
				return err
			}

			x, err := openOrCreate(bookPath, log)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			defer x.Close()

			if err := x.Write(cmd.Context(), reg, g); err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			if err := x.SaveAs(bookPath); err != nil {
				return fmt.Errorf("failed to save workbook: %w", err)
			}

			cmd.Printf("imported %d x %d grid into %s\n", g.Rows(), g.Cols(), reg.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&region, "region", "r", "", `Target region, e.g. "Data!B2" (default: Sheet1!A1)`)

	return cmd
}

func importRegion(region string) (provider.Region, error) {
	if region == "" {
		return provider.WholeSheet("Sheet1"), nil
	}
	return provider.ParseRegion(region)
}

func openOrCreate(path string, log *zap.Logger) (*provider.XLSX, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return provider.NewXLSX(log), nil
	}
	return provider.OpenXLSX(path, log)
}
