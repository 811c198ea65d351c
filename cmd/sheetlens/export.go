package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kgr-lab/sheetlens-go/pkg/sheetlens/inspector"
	"github.com/kgr-lab/sheetlens-go/pkg/sheetlens/provider"
)

func newExportCommand() *cobra.Command {
	var (
		region     string
		outputPath string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "export [book.xlsx]",
		Short: "Serialize a workbook region to JSON",
		Long: `export reads a region (default: the first sheet's used range) and
writes a lossless JSON serialization that preserves the grid's shape
and each cell's type. The output round-trips through import.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := buildLogger()
			defer log.Sync()

			x, err := provider.OpenXLSX(args[0], log)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			defer x.Close()

			var reg provider.Region
			if region == "" {
				sheets := x.SheetNames()
				if len(sheets) == 0 {
					return fmt.Errorf("export failed: workbook has no sheets")
				}
				reg = provider.WholeSheet(sheets[0])
			} else {
				reg, err = provider.ParseRegion(region)
				if err != nil {
					return err
				}
			}

			g, err := x.Read(cmd.Context(), reg)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			data, err := inspector.SerializeGrid(g, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, data, 0644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				return nil
			}
			cmd.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&region, "region", "r", "", `Region to export, e.g. "Sheet1!A1:D10" (default: first sheet)`)
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	return cmd
}
