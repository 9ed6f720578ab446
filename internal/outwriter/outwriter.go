// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/gpscore/internal/contract"
	"github.com/huangsam/gpscore/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WritePractices prints a scoring run using the configured output format.
func (ow *OutWriter) WritePractices(out *schema.ScoreOutput, cfg *contract.Config, duration time.Duration) error {
	return PrintPracticeResults(out, cfg, duration)
}

// WriteLookups prints resolved practice names using the configured output format.
func (ow *OutWriter) WriteLookups(lookups []schema.NameLookup, cfg *contract.Config, duration time.Duration) error {
	return PrintLookupResults(lookups, cfg, duration)
}

// WriteMetrics prints the active metric table using the configured output format.
func (ow *OutWriter) WriteMetrics(defs []schema.MetricDefinition, cfg *contract.Config) error {
	return PrintMetricsDefinitions(defs, cfg)
}
