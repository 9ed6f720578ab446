package outwriter

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/gpscore/internal/contract"
	"github.com/huangsam/gpscore/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintPracticeResults outputs a scoring run, dispatching based on the output format configured.
func PrintPracticeResults(out *schema.ScoreOutput, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONPractices(w, out)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVPractices(w, out, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeParquetPractices(out, cfg.OutputFile, time.Now().UTC()); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	case schema.XLSXOut:
		if err := writeXLSXPractices(out, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing XLSX output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePracticeTable(w, out, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
	return nil
}

// writePracticeTable generates and writes the human-readable table.
func writePracticeTable(w io.Writer, out *schema.ScoreOutput, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	headers := []string{"Rank", "Code", "Name", "Score", "Label"}
	if cfg.Detail {
		headers = append(headers, "ICB", "PCN", "Max", "%")
	}
	if cfg.Explain {
		headers = append(headers, "Explain")
	}
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTableNameWidth(cfg)
	data := make([][]string, 0, len(out.Results))
	for i := range out.Results {
		r := &out.Results[i]
		label := contract.GetPlainLabel(r.Percent)
		if cfg.UseColors {
			label = contract.GetColorLabel(r.Percent)
		}
		row := []string{
			strconv.Itoa(i + 1),
			r.Code,
			contract.TruncateName(practiceName(r), nameWidth),
			fmtFloat(r.Score),
			label,
		}
		if cfg.Detail {
			row = append(row, r.ICBCode, r.PCNCode, fmtFloat(r.MaxScore), fmtFloat(r.Percent))
		}
		if cfg.Explain {
			row = append(row, formatTopMetricBreakdown(r.Breakdown))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Showing top %d of %d practices from %s\n", len(out.Results), out.TotalPractices, filepath.Base(out.Source)); err != nil {
		return err
	}
	if len(out.SkippedMetrics) > 0 {
		if _, err := fmt.Fprintf(w, "Skipped metrics with no data: %s\n", strings.Join(out.SkippedMetrics, ", ")); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Scoring completed in %v with %d workers.\n", duration, cfg.Workers); err != nil {
		return err
	}
	return nil
}
