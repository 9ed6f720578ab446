package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/gpscore/internal/contract"
	"github.com/huangsam/gpscore/internal/parquet"
	"github.com/huangsam/gpscore/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/xuri/excelize/v2"
)

const lookupsSheet = "Lookups"

// PrintLookupResults outputs resolved practice names, dispatching based on the output format configured.
func PrintLookupResults(lookups []schema.NameLookup, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, lookups)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVLookups(w, lookups)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if err := parquet.WritePracticeNamesParquet(parquet.ConvertNameLookups(lookups), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
		return nil
	case schema.XLSXOut:
		return writeXLSXLookups(lookups, cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLookupTable(w, lookups, cfg, duration)
		}, "Wrote table")
	}
}

// writeLookupTable writes one row per code with its resolved name.
func writeLookupTable(w io.Writer, lookups []schema.NameLookup, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Code", "Name"})

	data := make([][]string, 0, len(lookups))
	unknown := 0
	for _, l := range lookups {
		if l.Name == schema.UnknownName {
			unknown++
		}
		data = append(data, []string{l.Code, l.Name})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Resolved %d of %d codes\n", len(lookups)-unknown, len(lookups)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Lookup completed in %v with %d workers.\n", duration, cfg.Workers)
	return err
}

// writeCSVLookups writes the lookups in CSV format.
func writeCSVLookups(w io.Writer, lookups []schema.NameLookup) error {
	return writeCSVWithHeader(w, []string{schema.CodeColumn, "name"}, func(cw *csv.Writer) error {
		for _, l := range lookups {
			if err := cw.Write([]string{l.Code, l.Name}); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeXLSXLookups writes the lookups to a single-sheet workbook.
func writeXLSXLookups(lookups []schema.NameLookup, outputFile string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), lookupsSheet); err != nil {
		return err
	}
	if err := setRow(f, lookupsSheet, 1, []any{schema.CodeColumn, "name"}); err != nil {
		return err
	}
	for i, l := range lookups {
		if err := setRow(f, lookupsSheet, i+2, []any{l.Code, l.Name}); err != nil {
			return err
		}
	}
	if err := saveWorkbook(f, outputFile); err != nil {
		return fmt.Errorf("error writing XLSX output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote XLSX to %s\n", outputFile)
	return nil
}
