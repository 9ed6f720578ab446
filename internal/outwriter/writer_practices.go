package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/huangsam/gpscore/internal/parquet"
	"github.com/huangsam/gpscore/schema"
	"github.com/xuri/excelize/v2"
)

// Sheet names used in XLSX reports.
const (
	scoresSheet  = "Scores"
	metricsSheet = "Metrics"
)

// practiceHeader is the fixed part of every tabular practice export.
var practiceHeader = []string{
	"rank",
	"gp_code",
	"name",
	"icb_code",
	"pcn_code",
	"score",
	"max_score",
	"percent",
	"label",
}

// jsonScoreOutput is ScoreOutput with rank and label added to each result.
type jsonScoreOutput struct {
	Source         string                          `json:"source"`
	TotalPractices int                             `json:"total_practices"`
	Metrics        []schema.MetricDefinition       `json:"metrics"`
	SkippedMetrics []string                        `json:"skipped_metrics,omitempty"`
	Results        []schema.EnrichedPracticeResult `json:"results"`
}

// writeJSONPractices writes the scoring run in JSON format.
func writeJSONPractices(w io.Writer, out *schema.ScoreOutput) error {
	return writeJSON(w, jsonScoreOutput{
		Source:         out.Source,
		TotalPractices: out.TotalPractices,
		Metrics:        out.Metrics,
		SkippedMetrics: out.SkippedMetrics,
		Results:        schema.EnrichPractices(out.Results),
	})
}

// writeCSVPractices writes one row per practice followed by the raw value of every active metric.
// Missing values are left empty.
func writeCSVPractices(w io.Writer, out *schema.ScoreOutput, fmtFloat func(float64) string) error {
	header := append([]string{}, practiceHeader...)
	for _, m := range out.Metrics {
		header = append(header, m.Name)
	}

	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, r := range out.Results {
			rec := []string{
				strconv.Itoa(i + 1),
				r.Code,
				r.Name,
				r.ICBCode,
				r.PCNCode,
				fmtFloat(r.Score),
				fmtFloat(r.MaxScore),
				fmtFloat(r.Percent),
				schema.GetPlainLabel(r.Percent),
			}
			for _, m := range out.Metrics {
				if v, ok := r.Values[m.Name]; ok {
					rec = append(rec, fmtFloat(v))
				} else {
					rec = append(rec, "")
				}
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeParquetPractices writes the ranked practices to a Parquet file.
func writeParquetPractices(out *schema.ScoreOutput, outputFile string, generatedAt time.Time) error {
	rows, err := parquet.ConvertPracticeResults(out.Results, generatedAt)
	if err != nil {
		return err
	}
	if err := parquet.WritePracticeScoresParquet(rows, outputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", outputFile)
	return nil
}

// writeXLSXPractices writes a workbook with the ranked practices and the active metric table.
func writeXLSXPractices(out *schema.ScoreOutput, outputFile string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), scoresSheet); err != nil {
		return err
	}

	header := make([]any, 0, len(practiceHeader)+len(out.Metrics))
	for _, h := range practiceHeader {
		header = append(header, h)
	}
	for _, m := range out.Metrics {
		header = append(header, m.Name)
	}
	if err := setRow(f, scoresSheet, 1, header); err != nil {
		return err
	}

	for i, r := range out.Results {
		row := []any{i + 1, r.Code, r.Name, r.ICBCode, r.PCNCode, r.Score, r.MaxScore, r.Percent, schema.GetPlainLabel(r.Percent)}
		for _, m := range out.Metrics {
			if v, ok := r.Values[m.Name]; ok {
				row = append(row, v)
			} else {
				row = append(row, nil)
			}
		}
		if err := setRow(f, scoresSheet, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(metricsSheet); err != nil {
		return err
	}
	if err := writeXLSXMetrics(f, metricsSheet, schema.BuildMetricsRenderModel(out.Metrics)); err != nil {
		return err
	}

	if err := saveWorkbook(f, outputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote XLSX to %s\n", outputFile)
	return nil
}

// writeXLSXMetrics fills sheet with one row per metric definition.
func writeXLSXMetrics(f *excelize.File, sheet string, model schema.MetricsRenderModel) error {
	if err := setRow(f, sheet, 1, []any{"metric", "display_name", "invert", "weight", "share"}); err != nil {
		return err
	}
	for i, m := range model.Metrics {
		if err := setRow(f, sheet, i+2, []any{m.Name, m.DisplayName, m.Invert, m.Weight, m.Share}); err != nil {
			return err
		}
	}
	return nil
}

// setRow writes values into consecutive cells of one worksheet row, starting at column A.
// Nil values leave the cell empty.
func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

// saveWorkbook creates the parent directory of outputFile and saves the workbook there.
func saveWorkbook(f *excelize.File, outputFile string) error {
	if err := os.MkdirAll(filepath.Dir(outputFile), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputFile)
}
