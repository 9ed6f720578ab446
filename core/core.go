// Package core has core logic for scoring, ranking and name resolution.
package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/gpscore/core/algo"
	"github.com/huangsam/gpscore/internal/contract"
	"github.com/huangsam/gpscore/internal/outwriter"
	"github.com/huangsam/gpscore/schema"
)

// ErrNoDataset is returned when a scoring run has no dataset path.
var ErrNoDataset = errors.New("a dataset path is required")

// outWriter renders every command's results.
var outWriter = outwriter.NewOutWriter()

// ExecuteScore scores the configured dataset and prints the ranked practices.
// It serves as the main entry point for the 'score' command.
func ExecuteScore(ctx context.Context, cfg *contract.Config, loader contract.DatasetLoader, resolver contract.NameResolver) error {
	start := time.Now()
	out, err := GetScoreResults(ctx, cfg, loader, resolver)
	if err != nil {
		return err
	}
	return outWriter.WritePractices(out, cfg, time.Since(start))
}

// GetScoreResults loads the dataset, scores every practice, ranks them and
// optionally resolves the names of the ranked practices.
func GetScoreResults(ctx context.Context, cfg *contract.Config, loader contract.DatasetLoader, resolver contract.NameResolver) (*schema.ScoreOutput, error) {
	if cfg.DatasetPath == "" {
		return nil, ErrNoDataset
	}
	quiet := shouldSuppressHeader(ctx)
	if !quiet {
		logScoreHeader(cfg)
	}

	ds, err := loader.Load(ctx, cfg.DatasetPath, contract.DatasetOptions{Sheet: cfg.Sheet, ICB: cfg.ICB})
	if err != nil {
		return nil, err
	}
	if len(ds.Records) == 0 {
		if cfg.ICB != "" {
			return nil, fmt.Errorf("no practices found for ICB %s", cfg.ICB)
		}
		return nil, errors.New("no practices found")
	}

	if !quiet {
		if missing := missingColumns(ds, cfg.Metrics); len(missing) > 0 {
			contract.LogWarn("Metrics not in dataset", errors.New(strings.Join(missing, ", ")))
		}
	}

	results, skipped, err := algo.ComputeScores(ds.Records, cfg.Metrics)
	if err != nil {
		return nil, err
	}
	ranked := algo.RankPractices(results, cfg.ResultLimit)

	if cfg.ResolveNames && resolver != nil {
		resolvePracticeNames(ctx, cfg, resolver, ranked)
	}

	return &schema.ScoreOutput{
		Source:         ds.Source,
		TotalPractices: len(ds.Records),
		Metrics:        cfg.Metrics,
		SkippedMetrics: skipped,
		Results:        ranked,
	}, nil
}

// ExecuteLookup resolves each code to a practice name and prints the results.
// It serves as the main entry point for the 'lookup' command.
func ExecuteLookup(ctx context.Context, cfg *contract.Config, resolver contract.NameResolver, codes []string) error {
	start := time.Now()
	lookups, err := GetLookupResults(ctx, cfg, resolver, codes)
	if err != nil {
		return err
	}
	return outWriter.WriteLookups(lookups, cfg, time.Since(start))
}

// GetLookupResults resolves each code, keeping the input order.
func GetLookupResults(ctx context.Context, cfg *contract.Config, resolver contract.NameResolver, codes []string) ([]schema.NameLookup, error) {
	if len(codes) == 0 {
		return nil, errors.New("at least one practice code is required")
	}
	if !shouldSuppressHeader(ctx) {
		logLookupHeader(cfg, len(codes))
	}

	names := lookupNames(ctx, resolver, codes, cfg.Workers, cfg.LookupTimeout)
	lookups := make([]schema.NameLookup, len(codes))
	for i, code := range codes {
		lookups[i] = schema.NameLookup{Code: code, Name: names[i]}
	}
	return lookups, nil
}

// ExecuteMetrics displays the active metric table.
// This is a static display that does not require a dataset.
func ExecuteMetrics(_ context.Context, cfg *contract.Config) error {
	return outWriter.WriteMetrics(cfg.Metrics, cfg)
}

// missingColumns returns the metric names that the dataset has no column for.
func missingColumns(ds *schema.Dataset, defs []schema.MetricDefinition) []string {
	var missing []string
	for _, d := range defs {
		if !ds.HasColumn(d.Name) {
			missing = append(missing, d.Name)
		}
	}
	return missing
}
