package schema

// Score label bands, applied to the percentage of the maximum score.
const (
	ExcellentLabel = "Excellent"
	GoodLabel      = "Good"
	FairLabel      = "Fair"
	PoorLabel      = "Poor"
)

// EnrichedPracticeResult adds presentation data to a PracticeResult.
type EnrichedPracticeResult struct {
	Rank  int    `json:"rank"`
	Label string `json:"label"`
	PracticeResult
}

// GetPlainLabel returns a plain text label for a score percentage.
func GetPlainLabel(percent float64) string {
	switch {
	case percent >= 75:
		return ExcellentLabel
	case percent >= 50:
		return GoodLabel
	case percent >= 25:
		return FairLabel
	default:
		return PoorLabel
	}
}

// EnrichPractices adds rank and label to a list of ranked practice results.
func EnrichPractices(results []PracticeResult) []EnrichedPracticeResult {
	output := make([]EnrichedPracticeResult, len(results))
	for i, r := range results {
		output[i] = EnrichedPracticeResult{
			Rank:           i + 1,
			Label:          GetPlainLabel(r.Percent),
			PracticeResult: r,
		}
	}
	return output
}
