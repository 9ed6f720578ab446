package outwriter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/huangsam/gpscore/internal/contract"
	"github.com/huangsam/gpscore/internal/parquet"
	"github.com/huangsam/gpscore/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/xuri/excelize/v2"
)

// PrintMetricsDefinitions displays the active metric table.
// This is a static display that does not require a dataset.
func PrintMetricsDefinitions(defs []schema.MetricDefinition, cfg *contract.Config) error {
	renderModel := schema.BuildMetricsRenderModel(defs)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONMetrics(w, renderModel)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVMetrics(w, renderModel, createFormatters(cfg.Precision))
		}, "Wrote CSV")
	case schema.ParquetOut:
		if err := parquet.WriteMetricWeightsParquet(parquet.ConvertMetricDefinitions(defs), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
		return nil
	case schema.XLSXOut:
		return printMetricsXLSX(renderModel, cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return printMetricsText(w, renderModel, cfg)
		}, "Wrote text")
	}
}

// printMetricsText displays metrics in human-readable text format.
func printMetricsText(w io.Writer, renderModel schema.MetricsRenderModel, cfg *contract.Config) error {
	title := renderModel.Title
	if cfg.UseEmojis {
		title = "🩺 " + title
	}
	if _, err := fmt.Fprintf(w, "%s\n%s\n\n", title, strings.Repeat("=", len(renderModel.Title)+3)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", renderModel.Description); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Formula: %s\n\n", renderModel.Formula); err != nil {
		return err
	}

	fmtFloat := createFormatters(cfg.Precision)
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Display Name", "Invert", "Weight", "Share %"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(renderModel.Metrics))
	for _, m := range renderModel.Metrics {
		invert := ""
		if m.Invert {
			invert = "yes"
		}
		data = append(data, []string{m.Name, m.DisplayName, invert, fmtFloat(m.Weight), fmtFloat(m.Share)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%d metrics, total weight %s\n", len(renderModel.Metrics), fmtFloat(renderModel.TotalWeight))
	return err
}

// printMetricsXLSX writes the metric table to a single-sheet workbook.
func printMetricsXLSX(renderModel schema.MetricsRenderModel, outputFile string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), metricsSheet); err != nil {
		return err
	}
	if err := writeXLSXMetrics(f, metricsSheet, renderModel); err != nil {
		return err
	}
	if err := saveWorkbook(f, outputFile); err != nil {
		return fmt.Errorf("error writing XLSX output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote XLSX to %s\n", outputFile)
	return nil
}
