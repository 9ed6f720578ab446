package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/gpscore/internal/contract"
	"github.com/huangsam/gpscore/internal/parquet"
	"github.com/huangsam/gpscore/schema"
	pq "github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleScoreOutput() *schema.ScoreOutput {
	return &schema.ScoreOutput{
		Source:         "/data/practices.csv",
		TotalPractices: 3,
		Metrics: []schema.MetricDefinition{
			{Name: "overallexp", Weight: 2},
			{Name: "AntibioticPrescribing", Invert: true, Weight: 1},
		},
		SkippedMetrics: []string{"qof_total"},
		Results: []schema.PracticeResult{
			{
				Code:      "F83010",
				Name:      "Hanley Primary Care Centre",
				ICBCode:   "QMJ",
				PCNCode:   "U12345",
				Score:     2.5,
				MaxScore:  3,
				Percent:   83.333,
				Breakdown: map[string]float64{"overallexp": 2, "AntibioticPrescribing": 0.5},
				Values:    map[string]float64{"overallexp": 30, "AntibioticPrescribing": 2},
			},
			{
				Code:      "F83004",
				ICBCode:   "QMJ",
				Score:     1,
				MaxScore:  3,
				Percent:   33.333,
				Breakdown: map[string]float64{"AntibioticPrescribing": 1},
				Values:    map[string]float64{"AntibioticPrescribing": 1},
			},
		},
	}
}

func TestWritePracticeTable(t *testing.T) {
	cfg := &contract.Config{
		Precision: 2,
		Workers:   4,
		Width:     200,
		Detail:    true,
		Explain:   true,
	}

	var buf bytes.Buffer
	err := writePracticeTable(&buf, sampleScoreOutput(), cfg, createFormatters(cfg.Precision), time.Second)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "F83010")
	assert.Contains(t, output, "Hanley Primary Care Centre")
	assert.Contains(t, output, schema.UnknownName)
	assert.Contains(t, output, "2.50")
	assert.Contains(t, output, schema.ExcellentLabel)
	assert.Contains(t, output, schema.FairLabel)
	assert.Contains(t, output, "U12345")
	assert.Contains(t, output, "83.33")
	assert.Contains(t, output, "Overall Experience (GP Survey)")
	assert.Contains(t, output, "Showing top 2 of 3 practices from practices.csv")
	assert.Contains(t, output, "Skipped metrics with no data: qof_total")
	assert.Contains(t, output, "with 4 workers")
}

func TestWritePracticeTableNoDetail(t *testing.T) {
	cfg := &contract.Config{Precision: 1, Workers: 1, Width: 120}

	var buf bytes.Buffer
	out := sampleScoreOutput()
	out.SkippedMetrics = nil
	require.NoError(t, writePracticeTable(&buf, out, cfg, createFormatters(cfg.Precision), time.Second))

	output := buf.String()
	assert.Contains(t, output, "2.5")
	assert.NotContains(t, output, "U12345")
	assert.NotContains(t, output, "Skipped metrics")
}

func TestWriteJSONPractices(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSONPractices(&buf, sampleScoreOutput()))

	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "/data/practices.csv", result["source"])
	assert.Equal(t, float64(3), result["total_practices"])

	results := result["results"].([]any)
	require.Len(t, results, 2)
	first := results[0].(map[string]any)
	assert.Equal(t, float64(1), first["rank"])
	assert.Equal(t, "F83010", first["code"])
	assert.Equal(t, schema.ExcellentLabel, first["label"])
}

func TestWriteCSVPractices(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCSVPractices(&buf, sampleScoreOutput(), createFormatters(2)))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 rows

	assert.Equal(t, []string{
		"rank", "gp_code", "name", "icb_code", "pcn_code", "score", "max_score", "percent", "label",
		"overallexp", "AntibioticPrescribing",
	}, records[0])
	assert.Equal(t, []string{"1", "F83010", "Hanley Primary Care Centre", "QMJ", "U12345", "2.50", "3.00", "83.33", "Excellent", "30.00", "2.00"}, records[1])
	// Missing values stay empty.
	assert.Equal(t, "", records[2][9])
	assert.Equal(t, "1.00", records[2][10])
}

func TestPrintPracticeResultsToFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("csv", func(t *testing.T) {
		path := filepath.Join(dir, "scores.csv")
		cfg := &contract.Config{Output: schema.CSVOut, OutputFile: path, Precision: 2}
		require.NoError(t, PrintPracticeResults(sampleScoreOutput(), cfg, time.Second))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(content), "rank,gp_code,name"))
	})

	t.Run("parquet", func(t *testing.T) {
		path := filepath.Join(dir, "scores.parquet")
		cfg := &contract.Config{Output: schema.ParquetOut, OutputFile: path, Precision: 2}
		require.NoError(t, PrintPracticeResults(sampleScoreOutput(), cfg, time.Second))

		file, err := os.Open(path)
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		reader := pq.NewGenericReader[parquet.PracticeScore](file)
		defer func() { _ = reader.Close() }()
		assert.Equal(t, int64(2), reader.NumRows())
	})

	t.Run("xlsx", func(t *testing.T) {
		path := filepath.Join(dir, "nested", "scores.xlsx")
		cfg := &contract.Config{Output: schema.XLSXOut, OutputFile: path, Precision: 2}
		require.NoError(t, PrintPracticeResults(sampleScoreOutput(), cfg, time.Second))

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		assert.Equal(t, []string{scoresSheet, metricsSheet}, f.GetSheetList())
		rows, err := f.GetRows(scoresSheet)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "gp_code", rows[0][1])
		assert.Equal(t, "F83010", rows[1][1])

		metricRows, err := f.GetRows(metricsSheet)
		require.NoError(t, err)
		require.Len(t, metricRows, 3)
		assert.Equal(t, "overallexp", metricRows[1][0])
	})
}

func TestGetMaxTableNameWidth(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *contract.Config
		expected int
	}{
		{"narrow terminal clamps to minimum", &contract.Config{Width: 40}, 15},
		{"wide terminal clamps to maximum", &contract.Config{Width: 300}, 70},
		{"basic columns", &contract.Config{Width: 100}, 50},
		{"detail and explain", &contract.Config{Width: 160, Detail: true, Explain: true}, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetMaxTableNameWidth(tt.cfg))
		})
	}
}
