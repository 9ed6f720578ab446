package cmd

import (
	"github.com/huangsam/gpscore/core"
	"github.com/huangsam/gpscore/internal/contract"
	"github.com/huangsam/gpscore/internal/dataset"
	"github.com/spf13/cobra"
)

// scoreCmd ranks the practices of a dataset by composite score.
var scoreCmd = &cobra.Command{
	Use:   "score [dataset]",
	Short: "Rank GP practices by weighted composite score.",
	Long: `Read a CSV or XLSX table of practice-level metrics and rank every practice.

Each metric is min-max normalised across the practices that report it,
inverted where a lower value is better, multiplied by its weight and summed.
Missing values contribute nothing and do not move other practices' scores.

Use this to:
- Compare practices within an ICB on one number
- See which metrics drive a practice's position
- Export a ranked table for reporting

Examples:
  # Rank every practice in the dataset
  gpscore score practices.csv

  # Top 10 practices in North Central London with names from ODS
  gpscore score practices.xlsx --icb QMJ --limit 10 --resolve-names

  # Use the bundled example config (North Central London, names from ODS)
  gpscore score practices.csv --config examples/gpscore.yaml

  # Show the leading contributors and extra columns
  gpscore score practices.csv --detail --explain

  # Leave metrics out and export to Excel
  gpscore score practices.csv --exclude-metrics qof_total,qof_hypertension --output xlsx --output-file scores.xlsx`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScore(rootCtx, cfg, dataset.NewLoader(), newResolver()); err != nil {
			contract.LogFatal("Cannot score practices", err)
		}
	},
}
