package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/gpscore/schema"
)

// writeJSONMetrics writes the metrics definitions in JSON format.
func writeJSONMetrics(w io.Writer, renderModel schema.MetricsRenderModel) error {
	return writeJSON(w, renderModel)
}

// writeCSVMetrics writes the metrics definitions in CSV format.
func writeCSVMetrics(w io.Writer, renderModel schema.MetricsRenderModel, fmtFloat func(float64) string) error {
	header := []string{"metric", "display_name", "invert", "weight", "share"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, m := range renderModel.Metrics {
			record := []string{
				m.Name,
				m.DisplayName,
				strconv.FormatBool(m.Invert),
				fmtFloat(m.Weight),
				fmtFloat(m.Share),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}
