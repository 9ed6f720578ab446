package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

// versionCmd reports the build that produced the binary.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gpscore version and build details.",
	Long: `Print the gpscore release, the commit it was built from, the build time
and the Go runtime.

Include this output when reporting a scoring difference between two runs,
since the default metric table and display names ship inside the binary.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("gpscore %s\n", version)
		cmd.Printf("  Commit:  %s\n", commit)
		cmd.Printf("  Built:   %s\n", date)
		cmd.Printf("  Runtime: %s (%s/%s)\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}
