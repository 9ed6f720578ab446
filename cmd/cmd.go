// Package cmd defines the command-line interface for gpscore.
package cmd

import (
	"github.com/huangsam/gpscore/internal/contract"
	"github.com/huangsam/gpscore/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().Bool("detail", false, "Print ICB, PCN, maximum score and percentage columns")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display (0 = all)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet or xlsx")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent name lookups")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("emoji", "no", "Enable emojis in headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("lookup-timeout", contract.DefaultLookupTimeout.String(), "Timeout for each ODS name lookup")
	rootCmd.PersistentFlags().String("ods-base-url", contract.DefaultODSBaseURL, "Base URL of the NHS ODS organisation API")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of scoreCmd to Viper
	scoreCmd.Flags().String("dataset", "", "Path to the practice dataset (CSV or XLSX)")
	scoreCmd.Flags().Bool("explain", false, "Print the top metrics behind each practice's score")
	scoreCmd.Flags().String("icb", "", "Only score practices in this ICB code (e.g. QMJ)")
	scoreCmd.Flags().String("sheet", "", "XLSX sheet to read (defaults to the first sheet)")
	scoreCmd.Flags().Bool("resolve-names", false, "Look up practice names from the NHS ODS API")
	scoreCmd.Flags().Bool("force-lookup", false, "Look up names even for practices the dataset already names")
	scoreCmd.Flags().String("exclude-metrics", "", "Comma-separated list of metrics to leave out of the score")
	if err := viper.BindPFlags(scoreCmd.Flags()); err != nil {
		contract.LogFatal("Error binding score flags", err)
	}
}
