// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/gpscore/internal/contract"
	"github.com/huangsam/gpscore/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the gpscore MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, loader contract.DatasetLoader, resolver contract.NameResolver) *server.MCPServer {
	s := server.NewMCPServer(
		"GP Practice Scoring Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg:  baseCfg,
		loader:   loader,
		resolver: resolver,
	}

	// --- 1. Tool: score_practices ---
	s.AddTool(mcp.NewTool("score_practices",
		mcp.WithDescription("Rank GP practices by a weighted composite score computed from a CSV or XLSX dataset."),
		mcp.WithString("dataset_path", mcp.Description("Path to the practice dataset (defaults to the configured dataset).")),
		mcp.WithString("icb", mcp.Description("Only score practices in this ICB code (e.g. "+schema.NorthCentralLondonICB+").")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
		mcp.WithBoolean("resolve_names", mcp.Description("Look up practice names from the NHS ODS API for the returned practices.")),
	), h.handleScorePractices)

	// --- 2. Tool: lookup_practice_name ---
	s.AddTool(mcp.NewTool("lookup_practice_name",
		mcp.WithDescription("Resolve GP practice codes to names using the NHS ODS API. Unresolvable codes return 'Unknown'."),
		mcp.WithString("codes", mcp.Description("Comma or space separated practice codes (e.g. 'F83004, F83006')."), mcp.Required()),
	), h.handleLookupPracticeName)

	// --- 3. Tool: get_metric_definitions ---
	s.AddTool(mcp.NewTool("get_metric_definitions",
		mcp.WithDescription("List the active scoring metrics with their weights and direction."),
	), h.handleGetMetricDefinitions)

	return s
}

// StartMCPServer starts the gpscore MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, loader contract.DatasetLoader, resolver contract.NameResolver) error {
	s := NewMCPServer(baseCfg, loader, resolver)
	return server.ServeStdio(s)
}
