package cmd

import (
	"github.com/huangsam/gpscore/core"
	"github.com/huangsam/gpscore/internal/contract"
	"github.com/spf13/cobra"
)

// metricsCmd displays the active metric table.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display the scoring metrics, their weights and direction",
	Long: `Show the metric table used by the score command.

Includes any custom table from .gpscore.yaml and any --exclude-metrics.
No dataset is read - this is purely informational.

Examples:
  # Show the default metric table
  gpscore metrics

  # View a custom table from a config file
  gpscore metrics --config .gpscore.yaml`,
	PreRunE: sharedSetupNoDataset,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMetrics(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot display metrics", err)
		}
	},
}
