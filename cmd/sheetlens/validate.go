package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kgr-lab/sheetlens-go/pkg/sheetlens"
	"github.com/kgr-lab/sheetlens-go/pkg/sheetlens/inspector"
	"github.com/kgr-lab/sheetlens-go/pkg/sheetlens/models"
	"github.com/kgr-lab/sheetlens-go/pkg/sheetlens/output"
	"github.com/kgr-lab/sheetlens-go/pkg/sheetlens/provider"
)

func newValidateCommand() *cobra.Command {
	var (
		region      string
		maxFindings int
		asJSON      bool
		pretty      bool
	)

	cmd := &cobra.Command{
		Use:   "validate [book.xlsx]",
		Short: "Scan a workbook for empty cells",
		Long: `validate scans a region (or every sheet when no region is given)
and lists the empty cells found. Findings are a report, not a failure:
the command exits 0 either way.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := buildLogger()
			defer log.Sync()

			if region == "" {
				return validateWorkbook(cmd, args[0], maxFindings, asJSON, pretty, log)
			}
			return validateRegion(cmd, args[0], region, maxFindings, asJSON, pretty, log)
		},
	}

	cmd.Flags().StringVarP(&region, "region", "r", "", `Region to scan, e.g. "Sheet1!A1:D10" or a sheet name (default: all sheets)`)
	cmd.Flags().IntVar(&maxFindings, "max-findings", sheetlens.DefaultMaxFindings, "Maximum positions to list per sheet")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the report as JSON instead of text")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	return cmd
}

func validateWorkbook(cmd *cobra.Command, path string, maxFindings int, asJSON, pretty bool, log *zap.Logger) error {
	opts := sheetlens.Options{MaxFindings: maxFindings, Logger: log}
	rep, err := sheetlens.Inspect(cmd.Context(), path, opts)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if asJSON {
		data, err := output.ToJSON(rep, pretty)
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	names := make([]string, 0, len(rep.Sheets))
	for name := range rep.Sheets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sheet := rep.Sheets[name]
		cmd.Printf("%s (%d rows x %d cols): %d empty cell(s)\n", name, sheet.Rows, sheet.Cols, sheet.Empty.Total)
		printFindings(cmd, sheet.Empty, opts.FindingsLimit())
	}
	return nil
}

func validateRegion(cmd *cobra.Command, path, region string, maxFindings int, asJSON, pretty bool, log *zap.Logger) error {
	reg, err := provider.ParseRegion(region)
	if err != nil {
		return err
	}

	x, err := provider.OpenXLSX(path, log)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	defer x.Close()

	g, err := x.Read(cmd.Context(), reg)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	report := inspector.ScanEmptyCells(g)
	if asJSON {
		data, err := output.ToJSON(report, pretty)
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("%s (%d rows x %d cols): %d empty cell(s)\n", reg.String(), g.Rows(), g.Cols(), report.Total)
	printFindings(cmd, report, maxFindings)
	return nil
}

func printFindings(cmd *cobra.Command, report models.EmptyCellReport, maxFindings int) {
	for _, line := range inspector.FormatForDisplay(report, maxFindings) {
		cmd.Printf("  %s\n", line)
	}
}
