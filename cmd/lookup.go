package cmd

import (
	"strings"

	"github.com/huangsam/gpscore/core"
	"github.com/huangsam/gpscore/internal/contract"
	"github.com/spf13/cobra"
)

// lookupCmd resolves practice codes to names.
var lookupCmd = &cobra.Command{
	Use:   "lookup <code>...",
	Short: "Resolve GP practice codes to names using the NHS ODS API.",
	Long: `Look up each practice code in the NHS Organisation Data Service.

Codes that cannot be resolved, for any reason, are reported as Unknown.

Examples:
  # Look up two practices
  gpscore lookup F83004 F83006

  # Codes may also be comma separated
  gpscore lookup F83004,F83006 --output json`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetupNoDataset,
	Run: func(_ *cobra.Command, args []string) {
		codes := contract.ParseCodes(strings.Join(args, " "))
		if err := core.ExecuteLookup(rootCtx, cfg, newResolver(), codes); err != nil {
			contract.LogFatal("Cannot look up practices", err)
		}
	},
}
