package schema

// MetricRow is one metric definition prepared for display.
type MetricRow struct {
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Invert      bool    `json:"invert"`
	Weight      float64 `json:"weight"`
	Share       float64 `json:"share"` // Weight as a percentage of the total weight
}

// MetricsRenderModel contains all processed data needed for displaying metric definitions.
type MetricsRenderModel struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	TotalWeight float64     `json:"total_weight"`
	Formula     string      `json:"formula"`
	Metrics     []MetricRow `json:"metrics"`
}

// BuildMetricsRenderModel prepares the active metric table for display.
func BuildMetricsRenderModel(defs []MetricDefinition) MetricsRenderModel {
	var total float64
	for _, d := range defs {
		total += d.Weight
	}
	rows := make([]MetricRow, len(defs))
	for i, d := range defs {
		share := 0.0
		if total > 0 {
			share = 100 * d.Weight / total
		}
		rows[i] = MetricRow{
			Name:        d.Name,
			DisplayName: DisplayName(d.Name),
			Invert:      d.Invert,
			Weight:      d.Weight,
			Share:       share,
		}
	}
	return MetricsRenderModel{
		Title:       "GP Practice Composite Score",
		Description: "Each metric is min-max normalised across practices, inverted where lower is better, then weighted and summed.",
		TotalWeight: total,
		Formula:     "score = sum(weight * (invert ? 1 - norm(value) : norm(value)))",
		Metrics:     rows,
	}
}
