// Package parquet provides data structures and functions for exporting gpscore
// results to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/huangsam/gpscore/schema"
	"github.com/parquet-go/parquet-go"
)

// PracticeScore is one ranked practice in a scoring run.
type PracticeScore struct {
	// Rank is the 1-based position in the ranked report
	Rank int32 `parquet:"rank,snappy"`

	// PracticeCode is the ODS code of the practice
	PracticeCode string `parquet:"practice_code,snappy"`

	// PracticeName is the resolved or dataset-provided name (nullable)
	PracticeName *string `parquet:"practice_name,optional,snappy"`

	// ICBCode is the Integrated Care Board the practice belongs to (nullable)
	ICBCode *string `parquet:"icb_code,optional,snappy"`

	// PCNCode is the Primary Care Network the practice belongs to (nullable)
	PCNCode *string `parquet:"pcn_code,optional,snappy"`

	// Score is the composite weighted score
	Score float64 `parquet:"score,snappy"`

	// MaxScore is the best achievable score for this run
	MaxScore float64 `parquet:"max_score,snappy"`

	// Percent is Score as a percentage of MaxScore
	Percent float64 `parquet:"percent,snappy"`

	// Label is the band the percentage falls into
	Label string `parquet:"label,snappy"`

	// Breakdown is the JSON-encoded map of metric to weighted contribution
	Breakdown string `parquet:"breakdown,snappy"`

	// GeneratedAt is when the run finished (stored as TIMESTAMP with nanosecond precision)
	GeneratedAt time.Time `parquet:"generated_at,snappy"`
}

// MetricWeight is one row of the active metric table.
type MetricWeight struct {
	MetricName  string  `parquet:"metric_name,snappy"`
	DisplayName string  `parquet:"display_name,snappy"`
	Invert      bool    `parquet:"invert,snappy"`
	Weight      float64 `parquet:"weight,snappy"`
}

// PracticeName is one resolved practice code.
type PracticeName struct {
	PracticeCode string `parquet:"practice_code,snappy"`
	PracticeName string `parquet:"practice_name,snappy"`
}

// writeRows writes data to a new Parquet file at outputPath.
// The schema is derived from the struct tags of T.
func writeRows[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WritePracticeScoresParquet writes a slice of PracticeScore structs to a Parquet file.
func WritePracticeScoresParquet(data []PracticeScore, outputPath string) error {
	return writeRows(data, outputPath)
}

// WriteMetricWeightsParquet writes a slice of MetricWeight structs to a Parquet file.
func WriteMetricWeightsParquet(data []MetricWeight, outputPath string) error {
	return writeRows(data, outputPath)
}

// WritePracticeNamesParquet writes a slice of PracticeName structs to a Parquet file.
func WritePracticeNamesParquet(data []PracticeName, outputPath string) error {
	return writeRows(data, outputPath)
}

// ConvertPracticeResults converts ranked results to PracticeScore rows for Parquet export.
func ConvertPracticeResults(results []schema.PracticeResult, generatedAt time.Time) ([]PracticeScore, error) {
	rows := make([]PracticeScore, len(results))
	for i, r := range results {
		breakdown, err := json.Marshal(r.Breakdown)
		if err != nil {
			return nil, fmt.Errorf("encode breakdown for %s: %w", r.Code, err)
		}
		rows[i] = PracticeScore{
			Rank:         int32(i + 1),
			PracticeCode: r.Code,
			PracticeName: optional(r.Name),
			ICBCode:      optional(r.ICBCode),
			PCNCode:      optional(r.PCNCode),
			Score:        r.Score,
			MaxScore:     r.MaxScore,
			Percent:      r.Percent,
			Label:        schema.GetPlainLabel(r.Percent),
			Breakdown:    string(breakdown),
			GeneratedAt:  generatedAt,
		}
	}
	return rows, nil
}

// ConvertMetricDefinitions converts the active metric table to MetricWeight rows.
func ConvertMetricDefinitions(defs []schema.MetricDefinition) []MetricWeight {
	rows := make([]MetricWeight, len(defs))
	for i, d := range defs {
		rows[i] = MetricWeight{
			MetricName:  d.Name,
			DisplayName: schema.DisplayName(d.Name),
			Invert:      d.Invert,
			Weight:      d.Weight,
		}
	}
	return rows
}

// ConvertNameLookups converts name lookups to PracticeName rows.
func ConvertNameLookups(lookups []schema.NameLookup) []PracticeName {
	rows := make([]PracticeName, len(lookups))
	for i, l := range lookups {
		rows[i] = PracticeName{PracticeCode: l.Code, PracticeName: l.Name}
	}
	return rows
}

// optional returns nil for an empty string so the column is written as null.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
