package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kgr-lab/sheetlens-go/pkg/sheetlens/models"
	"github.com/kgr-lab/sheetlens-go/pkg/sheetlens/provider"
)

func newSetupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup [book.xlsx]",
		Short: "Create a workbook seeded with sample project data",
		Long: `setup writes a fresh workbook holding a sample renewable-energy
project table, including a few intentionally blank cells, so validate
and export have data to work against.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := buildLogger()
			defer log.Sync()

			g, err := sampleProjectGrid()
			if err != nil {
				return err
			}

			x := provider.NewXLSX(log)
			defer x.Close()

			if err := x.SetSheetName("Sheet1", "Projects"); err != nil {
				return fmt.Errorf("setup failed: %w", err)
			}
			if err := x.Write(cmd.Context(), provider.WholeSheet("Projects"), g); err != nil {
				return fmt.Errorf("setup failed: %w", err)
			}
			if err := x.SaveAs(args[0]); err != nil {
				return fmt.Errorf("failed to save workbook: %w", err)
			}

			cmd.Printf("wrote %d x %d sample grid to %s\n", g.Rows(), g.Cols(), args[0])
			return nil
		},
	}

	return cmd
}

// sampleProjectGrid returns a project table with gaps in the capacity
// and NPV columns. Zero and false values are present on purpose: they
// are data, not blanks.
func sampleProjectGrid() (models.Grid, error) {
	header := []models.CellValue{
		models.Text("Project Name"),
		models.Text("Technology"),
		models.Text("Country"),
		models.Text("Capacity (MW)"),
		models.Text("CAPEX (MUSD)"),
		models.Text("NPV (MUSD)"),
		models.Text("IRR"),
		models.Text("Status"),
		models.Text("Grid Connected"),
	}
	rows := [][]models.CellValue{
		header,
		{
			models.Text("Helios Solar Park"),
			models.Text("Solar PV"),
			models.Text("Spain"),
			models.Number(150),
			models.Number(112.5),
			models.Number(34.2),
			models.Number(0.092),
			models.Text("Operational"),
			models.Bool(true),
		},
		{
			models.Text("North Cape Wind"),
			models.Text("Onshore Wind"),
			models.Text("Norway"),
			models.Number(210),
			models.Number(273),
			models.Empty(),
			models.Number(0.081),
			models.Text("Construction"),
			models.Bool(false),
		},
		{
			models.Text("Aegir Offshore"),
			models.Text("Offshore Wind"),
			models.Text("Denmark"),
			models.Empty(),
			models.Number(1260),
			models.Number(118.4),
			models.Empty(),
			models.Text("Development"),
			models.Bool(false),
		},
		{
			models.Text("Rio Verde Hydro"),
			models.Text("Hydro"),
			models.Text("Brazil"),
			models.Number(85),
			models.Number(161.5),
			models.Number(0),
			models.Number(0.063),
			models.Text("Operational"),
			models.Bool(true),
		},
	}
	return models.NewGrid(rows)
}
