// Package dataset loads per-practice metric tables from CSV and XLSX files.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/huangsam/gpscore/internal/contract"
	"github.com/huangsam/gpscore/schema"
)

// Errors returned while reading a dataset.
var (
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	ErrEmptyDataset      = errors.New("dataset has no header row")
	ErrMissingCodeColumn = errors.New("dataset has no gp_code column")
	ErrNotNumeric        = errors.New("value is not numeric")
)

// missingTokens are cell values treated as an absent measurement (case-insensitive).
var missingTokens = map[string]struct{}{
	"":     {},
	"-":    {},
	"..":   {},
	"na":   {},
	"n/a":  {},
	"nan":  {},
	"null": {},
	"none": {},
}

// Loader implements contract.DatasetLoader for CSV and XLSX files.
type Loader struct{}

var _ contract.DatasetLoader = &Loader{} // Compile-time check

// NewLoader returns a dataset loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the dataset at path, choosing the reader by file extension.
func (l *Loader) Load(ctx context.Context, path string, opts contract.DatasetOptions) (*schema.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		rows [][]string
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(path, opts.Sheet)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return parseRows(path, rows, opts)
}

// columnIndex holds the positions of the identity columns in a header row.
type columnIndex struct {
	code, name, icb, pcn int
}

// parseRows turns raw string rows into a dataset. The first non-blank row is the header.
func parseRows(source string, rows [][]string, opts contract.DatasetOptions) (*schema.Dataset, error) {
	headerAt := -1
	for i, row := range rows {
		if !isBlank(row) {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDataset, source)
	}

	columns := make([]string, len(rows[headerAt]))
	for i, h := range rows[headerAt] {
		columns[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	idx := columnIndex{code: -1, name: -1, icb: -1, pcn: -1}
	var metricCols []int
	seen := make(map[string]struct{}, len(columns))
	for i, col := range columns {
		if col == "" {
			continue
		}
		if _, dup := seen[col]; dup {
			return nil, fmt.Errorf("%s: column '%s' appears more than once", source, col)
		}
		seen[col] = struct{}{}

		lower := strings.ToLower(col)
		switch lower {
		case schema.CodeColumn:
			idx.code = i
		case schema.PracticeNameColumn:
			idx.name = i
		case schema.GPNameColumn:
			if idx.name < 0 {
				idx.name = i
			}
		case schema.ICBCodeColumn:
			idx.icb = i
		case schema.PCNCodeColumn:
			idx.pcn = i
		}
		if _, identity := schema.IdentityColumns[lower]; !identity {
			metricCols = append(metricCols, i)
		}
	}
	if idx.code < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingCodeColumn, source)
	}
	if opts.ICB != "" && idx.icb < 0 {
		return nil, fmt.Errorf("%s: cannot filter by ICB without an icb_code column", source)
	}

	ds := &schema.Dataset{
		Source:        source,
		Columns:       columns,
		MetricColumns: make([]string, len(metricCols)),
	}
	for i, c := range metricCols {
		ds.MetricColumns[i] = columns[c]
	}

	codes := make(map[string]int)
	for r := headerAt + 1; r < len(rows); r++ {
		row := rows[r]
		line := r + 1
		if isBlank(row) {
			continue
		}

		code := strings.ToUpper(cell(row, idx.code))
		if code == "" {
			return nil, fmt.Errorf("%s row %d: empty %s", source, line, schema.CodeColumn)
		}
		icb := strings.ToUpper(cell(row, idx.icb))
		if opts.ICB != "" && !strings.EqualFold(icb, opts.ICB) {
			continue
		}
		if first, dup := codes[code]; dup {
			return nil, fmt.Errorf("%s row %d: practice %s already seen on row %d", source, line, code, first)
		}
		codes[code] = line

		rec := schema.PracticeRecord{
			Code:    code,
			Name:    cell(row, idx.name),
			ICBCode: icb,
			PCNCode: strings.ToUpper(cell(row, idx.pcn)),
			Values:  make(map[string]float64, len(metricCols)),
		}
		for _, c := range metricCols {
			v, ok, err := ParseValue(cell(row, c))
			if err != nil {
				return nil, fmt.Errorf("%s row %d column %s: %w", source, line, columns[c], err)
			}
			if ok {
				rec.Values[columns[c]] = v
			}
		}
		ds.Records = append(ds.Records, rec)
	}
	return ds, nil
}

// ParseValue parses one metric cell. The boolean is false when the cell holds a
// missing-value marker. Thousands separators and a trailing percent sign are accepted.
func ParseValue(raw string) (float64, bool, error) {
	s := strings.TrimSpace(raw)
	if _, missing := missingTokens[strings.ToLower(s)]; missing {
		return 0, false, nil
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q", ErrNotNumeric, raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, nil
	}
	return v, true, nil
}

// cell returns the trimmed value at column i, or "" when the row is short or i < 0.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// isBlank reports whether every cell in the row is empty.
func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
