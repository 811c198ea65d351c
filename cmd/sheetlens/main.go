// Package main provides the CLI entry point for sheetlens.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetlens",
		Short: "Inspect spreadsheet workbooks for empty cells and export grids",
		Long: `sheetlens reads rectangular regions from xlsx workbooks, reports
empty cells, and serializes grids to a lossless JSON form that can be
imported back into a workbook.`,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newSetupCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildLogger() *zap.Logger {
	if verbose {
		log, err := zap.NewDevelopment()
		if err == nil {
			return log
		}
	}
	return zap.NewNop()
}
