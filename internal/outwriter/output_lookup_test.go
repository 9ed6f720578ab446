package outwriter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/gpscore/internal/contract"
	"github.com/huangsam/gpscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var sampleLookups = []schema.NameLookup{
	{Code: "F83004", Name: "Archway Medical Centre"},
	{Code: "Y99999", Name: schema.UnknownName},
}

func TestWriteLookupTable(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Workers: 2}
	require.NoError(t, writeLookupTable(&buf, sampleLookups, cfg, time.Second))

	output := buf.String()
	assert.Contains(t, output, "Archway Medical Centre")
	assert.Contains(t, output, "Y99999")
	assert.Contains(t, output, "Resolved 1 of 2 codes")
}

func TestWriteCSVLookups(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCSVLookups(&buf, sampleLookups))
	assert.Equal(t, "gp_code,name\nF83004,Archway Medical Centre\nY99999,Unknown\n", buf.String())
}

func TestPrintLookupResultsToFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(dir, "names.json")
		cfg := &contract.Config{Output: schema.JSONOut, OutputFile: path}
		require.NoError(t, PrintLookupResults(sampleLookups, cfg, time.Second))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "\"code\": \"F83004\"")
	})

	t.Run("parquet", func(t *testing.T) {
		path := filepath.Join(dir, "names.parquet")
		cfg := &contract.Config{Output: schema.ParquetOut, OutputFile: path}
		require.NoError(t, PrintLookupResults(sampleLookups, cfg, time.Second))
		_, err := os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("xlsx", func(t *testing.T) {
		path := filepath.Join(dir, "names.xlsx")
		cfg := &contract.Config{Output: schema.XLSXOut, OutputFile: path}
		require.NoError(t, PrintLookupResults(sampleLookups, cfg, time.Second))

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()
		rows, err := f.GetRows(lookupsSheet)
		require.NoError(t, err)
		assert.Equal(t, [][]string{
			{"gp_code", "name"},
			{"F83004", "Archway Medical Centre"},
			{"Y99999", "Unknown"},
		}, rows)
	})
}
