package cmd

import (
	"github.com/huangsam/gpscore/internal/dataset"
	"github.com/huangsam/gpscore/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:     "mcp",
	Short:   "Start the gpscore MCP server",
	Long:    `Launch an MCP server that allows AI agents to score practices and look up practice names via standard tools.`,
	PreRunE: sharedSetupNoDataset,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, dataset.NewLoader(), newResolver())
	},
}
