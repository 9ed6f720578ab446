package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/gpscore/core"
	"github.com/huangsam/gpscore/internal/contract"
	"github.com/huangsam/gpscore/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg  *contract.Config
	loader   contract.DatasetLoader
	resolver contract.NameResolver
}

func (h *toolHandler) handleScorePractices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("dataset_path", ""); p != "" {
		abs, err := contract.ValidateDatasetPath(p)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid dataset_path: %v", err)), nil
		}
		cfg.DatasetPath = abs
	}
	if icb := request.GetString("icb", ""); icb != "" {
		cfg.ICB = strings.ToUpper(strings.TrimSpace(icb))
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = min(l, contract.MaxResultLimit)
	}
	cfg.ResolveNames = request.GetBool("resolve_names", cfg.ResolveNames)

	out, err := core.GetScoreResults(core.WithSuppressHeader(ctx), cfg, h.loader, h.resolver)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	payload := struct {
		Source         string                          `json:"source"`
		TotalPractices int                             `json:"total_practices"`
		SkippedMetrics []string                        `json:"skipped_metrics,omitempty"`
		Results        []schema.EnrichedPracticeResult `json:"results"`
	}{
		Source:         out.Source,
		TotalPractices: out.TotalPractices,
		SkippedMetrics: out.SkippedMetrics,
		Results:        schema.EnrichPractices(out.Results),
	}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleLookupPracticeName(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	codes := contract.ParseCodes(request.GetString("codes", ""))
	if len(codes) == 0 {
		return mcp.NewToolResultError("codes is required"), nil
	}

	lookups, err := core.GetLookupResults(core.WithSuppressHeader(ctx), h.baseCfg, h.resolver, codes)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("lookup failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(lookups, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetMetricDefinitions(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	model := schema.BuildMetricsRenderModel(h.baseCfg.Metrics)
	jsonData, _ := json.MarshalIndent(model, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
