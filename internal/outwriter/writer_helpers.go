package outwriter

import (
	"cmp"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/huangsam/gpscore/internal/contract"
	"github.com/huangsam/gpscore/schema"
)

// topNMetrics is how many contributors the explain column lists.
const topNMetrics = 3

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader creates a CSV writer, writes the header, then the data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	return writeRows(csvWriter)
}

// createFormatters creates the float formatter shared by every output type.
func createFormatters(precision int) func(float64) string {
	return func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
}

// practiceName returns the name to show for a practice, falling back to Unknown.
func practiceName(r *schema.PracticeResult) string {
	if strings.TrimSpace(r.Name) == "" {
		return schema.UnknownName
	}
	return r.Name
}

// metricContribution is one entry of a practice's score breakdown.
type metricContribution struct {
	Name  string
	Value float64
}

// formatTopMetricBreakdown lists the metrics that contributed most to a practice's score.
func formatTopMetricBreakdown(breakdown map[string]float64) string {
	var metrics []metricContribution
	for k, v := range breakdown {
		if v > 0 {
			metrics = append(metrics, metricContribution{Name: k, Value: v})
		}
	}
	if len(metrics) == 0 {
		return "Not applicable"
	}

	slices.SortFunc(metrics, func(a, b metricContribution) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	limit := min(len(metrics), topNMetrics)
	parts := make([]string, limit)
	for i := range limit {
		parts[i] = schema.DisplayName(metrics[i].Name)
	}
	return strings.Join(parts, " > ")
}
