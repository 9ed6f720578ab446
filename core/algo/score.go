package algo

import (
	"fmt"
	"math"

	"github.com/huangsam/gpscore/schema"
)

// ComputeScores applies the weighted metric table to every record and returns one
// result per record, in input order.
//
// Each metric is normalised across the practices that report it. A practice with no
// value for a metric gets 0 for that metric and does not move the other practices'
// min or max. A metric that no practice reports is skipped and listed in the second
// return value; it also does not count towards MaxScore.
func ComputeScores(records []schema.PracticeRecord, defs []schema.MetricDefinition) ([]schema.PracticeResult, []string, error) {
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%w: no practices to score", ErrInvalidInput)
	}
	if len(defs) == 0 {
		return nil, nil, fmt.Errorf("%w: no metrics configured", ErrInvalidInput)
	}

	results := make([]schema.PracticeResult, len(records))
	for i, rec := range records {
		results[i] = schema.PracticeResult{
			Code:      rec.Code,
			Name:      rec.Name,
			ICBCode:   rec.ICBCode,
			PCNCode:   rec.PCNCode,
			Breakdown: make(map[string]float64, len(defs)),
			Values:    make(map[string]float64, len(defs)),
		}
	}

	var maxScore float64
	var skipped []string
	for _, def := range defs {
		idx, series := collectSeries(records, def.Name)
		if len(series) == 0 {
			skipped = append(skipped, def.Name)
			continue
		}

		norm, err := MinMaxNormalise(series)
		if err != nil {
			return nil, nil, fmt.Errorf("normalise %s: %w", def.Name, err)
		}

		for j, i := range idx {
			v := norm[j]
			if def.Invert {
				v = 1 - v
			}
			contrib := v * def.Weight
			results[i].Breakdown[def.Name] = contrib
			results[i].Values[def.Name] = series[j]
			results[i].Score += contrib
		}
		maxScore += def.Weight
	}

	for i := range results {
		results[i].MaxScore = maxScore
		if maxScore > 0 {
			results[i].Percent = 100 * results[i].Score / maxScore
		}
	}
	return results, skipped, nil
}

// collectSeries gathers the present, finite values of one metric along with the
// record index each value came from.
func collectSeries(records []schema.PracticeRecord, metric string) ([]int, []float64) {
	idx := make([]int, 0, len(records))
	series := make([]float64, 0, len(records))
	for i, rec := range records {
		v, ok := rec.Values[metric]
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		idx = append(idx, i)
		series = append(series, v)
	}
	return idx, series
}
