// Package schema has configs, models and lookup tables for all parts of gpscore.
package schema

import "slices"

// PracticeRecord is one row of a practice dataset.
// Values holds only the metric cells that were present; a missing cell has no key.
type PracticeRecord struct {
	Code    string             // Practice code (opaque, e.g. "F83004")
	Name    string             // Practice name, if the dataset carries one
	ICBCode string             // Integrated Care Board code
	PCNCode string             // Primary Care Network code
	Values  map[string]float64 // Raw metric values keyed by column id
}

// Dataset is a loaded practice table.
type Dataset struct {
	Source        string           // Path the dataset was read from
	Columns       []string         // Header row, in file order
	MetricColumns []string         // Columns parsed as numeric metrics
	Records       []PracticeRecord // One entry per practice row
}

// HasColumn reports whether the dataset header contains the given column.
func (d *Dataset) HasColumn(name string) bool {
	return slices.Contains(d.Columns, name)
}

// PracticeResult is the composite score of a single practice.
type PracticeResult struct {
	Code      string             `json:"code"`
	Name      string             `json:"name"`
	ICBCode   string             `json:"icb_code,omitempty"`
	PCNCode   string             `json:"pcn_code,omitempty"`
	Score     float64            `json:"score"`     // Sum of weighted contributions
	MaxScore  float64            `json:"max_score"` // Sum of weights of scored metrics
	Percent   float64            `json:"percent"`   // 100 * Score / MaxScore
	Breakdown map[string]float64 `json:"breakdown"` // Weighted contribution per metric
	Values    map[string]float64 `json:"values"`    // Raw values of scored metrics
}

// ScoreOutput is the full result of one scoring run.
type ScoreOutput struct {
	Source         string             `json:"source"`
	TotalPractices int                `json:"total_practices"`
	Metrics        []MetricDefinition `json:"metrics"`
	SkippedMetrics []string           `json:"skipped_metrics,omitempty"`
	Results        []PracticeResult   `json:"results"`
}

// NameLookup pairs a practice code with its resolved name.
type NameLookup struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// HTTPResponse is the minimal response surface the name resolver needs.
type HTTPResponse struct {
	StatusCode int
	Body       []byte
}
