// Package main provides a performance benchmarking tool for the gpscore CLI.
// It generates synthetic practice datasets of increasing size, scores each one
// in several output formats, treats the first successful run as cold and averages the rest as warm,
// and writes a CSV summary for performance analysis and documentation.
//
// Prerequisites:
// - gpscore binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory where datasets and outputs are written
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/huangsam/gpscore/schema"
	"github.com/xuri/excelize/v2"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Dataset  string
	Output   string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir string
	Timeout time.Duration
	Runs    int
	Sizes   []int
	Inputs  []string
	Outputs []schema.OutputMode
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir: os.Args[1],
		Timeout: 2 * time.Minute,
		Runs:    4,
		Sizes:   []int{1000, 6500, 25000},
		Inputs:  []string{"csv", "xlsx"},
		Outputs: []schema.OutputMode{schema.TextOut, schema.CSVOut, schema.JSONOut, schema.ParquetOut},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the gpscore binary exists and the work dir is writable
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("gpscore"); err != nil {
		return fmt.Errorf("gpscore binary not found in PATH")
	}
	return os.MkdirAll(config.WorkDir, 0o755)
}

// runBenchmarks generates each dataset and scores it in every output format
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d sizes, %d inputs, %d outputs, %v timeout, %d runs\n",
		len(config.Sizes), len(config.Inputs), len(config.Outputs), config.Timeout, config.Runs)

	rng := rand.New(rand.NewPCG(42, 2024))
	for _, size := range config.Sizes {
		rows := generateRows(rng, size)
		for _, input := range config.Inputs {
			name := fmt.Sprintf("practices_%d.%s", size, input)
			path := filepath.Join(config.WorkDir, name)
			if err := writeDataset(path, input, rows); err != nil {
				fmt.Printf("Failed to write %s: %v\n", name, err)
				continue
			}

			fmt.Printf("Benchmarking %s\n", name)
			for _, output := range config.Outputs {
				results = append(results, runBenchmarkSuite(config, name, path, output))
			}
		}
	}

	return results
}

// runBenchmarkSuite scores one dataset in one output format several times
func runBenchmarkSuite(config BenchmarkConfig, name, path string, output schema.OutputMode) BenchmarkResult {
	args := []string{"score", path, "--output", string(output), "--limit", "10000"}
	if output != schema.TextOut {
		args = append(args, "--output-file", filepath.Join(config.WorkDir, "out."+string(output)))
	}

	cold, warm := runBenchmark(config, args)

	coldTime := "TIMEOUT"
	if cold > 0 {
		coldTime = fmt.Sprintf("%.3fs", cold)
	}
	warmTime := "TIMEOUT"
	if len(warm) > 0 {
		var sum float64
		for _, t := range warm {
			sum += t
		}
		warmTime = fmt.Sprintf("%.3fs", sum/float64(len(warm)))
	}

	fmt.Printf("  %-8s Cold time: %s, Warm average: %s\n", output, coldTime, warmTime)

	return BenchmarkResult{
		Dataset:  name,
		Output:   string(output),
		ColdTime: coldTime,
		WarmTime: warmTime,
	}
}

// runBenchmark executes gpscore multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, args []string) (coldTime float64, warmTimes []float64) {
	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("gpscore", args...)
		cmd.Dir = config.WorkDir

		done := make(chan error, 1)
		go func() {
			_, err := cmd.CombinedOutput()
			done <- err
		}()

		select {
		case err := <-done:
			if err == nil {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// generateRows builds a header and size rows of plausible metric values.
// About one cell in twenty is left empty to exercise missing-value handling.
func generateRows(rng *rand.Rand, size int) [][]string {
	metrics := schema.DefaultMetrics()
	header := []string{schema.CodeColumn, schema.PracticeNameColumn, schema.ICBCodeColumn}
	for _, m := range metrics {
		header = append(header, m.Name)
	}

	icbs := []string{"QMJ", "QRV", "QWE", "QKK", "QOP"}
	rows := make([][]string, 0, size+1)
	rows = append(rows, header)
	for i := range size {
		row := []string{
			fmt.Sprintf("B%05d", i),
			fmt.Sprintf("Practice %d", i),
			icbs[i%len(icbs)],
		}
		for range metrics {
			if rng.IntN(20) == 0 {
				row = append(row, "")
				continue
			}
			row = append(row, strconv.FormatFloat(rng.Float64()*100, 'f', 2, 64))
		}
		rows = append(rows, row)
	}
	return rows
}

// writeDataset writes rows as CSV or as the first sheet of a workbook
func writeDataset(path, format string, rows [][]string) error {
	if format == "xlsx" {
		f := excelize.NewFile()
		defer func() { _ = f.Close() }()
		sheet := f.GetSheetName(0)
		for r, row := range rows {
			for c, v := range row {
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return err
				}
			}
		}
		return f.SaveAs(path)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()
	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return file.Sync()
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/gpscore_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"dataset", "output", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		if err := writer.Write([]string{result.Dataset, result.Output, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, result := range results {
		fmt.Printf("  %-22s %-8s Cold: %s, Warm: %s\n", result.Dataset, result.Output, result.ColdTime, result.WarmTime)
	}
}
