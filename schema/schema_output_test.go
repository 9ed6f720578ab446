package schema_test

import (
	"testing"

	"github.com/huangsam/gpscore/schema"
	"github.com/stretchr/testify/assert"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		percent  float64
		expected string
	}{
		{"Excellent Upper", 100.0, "Excellent"},
		{"Excellent Lower", 75.0, "Excellent"},
		{"Good Upper", 74.9, "Good"},
		{"Good Lower", 50.0, "Good"},
		{"Fair Upper", 49.9, "Fair"},
		{"Fair Lower", 25.0, "Fair"},
		{"Poor Upper", 24.9, "Poor"},
		{"Poor Lower", 0.0, "Poor"},
		{"Negative Percent", -10.0, "Poor"}, // Edge case
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, schema.GetPlainLabel(tt.percent))
		})
	}
}

func TestEnrichPractices(t *testing.T) {
	results := []schema.PracticeResult{
		{Code: "F83004", Percent: 81.0}, // Excellent
		{Code: "F83006", Percent: 55.0}, // Good
		{Code: "F83010", Percent: 10.0}, // Poor
	}

	enriched := schema.EnrichPractices(results)

	assert.Len(t, enriched, 3)

	assert.Equal(t, 1, enriched[0].Rank)
	assert.Equal(t, "Excellent", enriched[0].Label)
	assert.Equal(t, "F83004", enriched[0].Code)

	assert.Equal(t, 2, enriched[1].Rank)
	assert.Equal(t, "Good", enriched[1].Label)
	assert.Equal(t, "F83006", enriched[1].Code)

	assert.Equal(t, 3, enriched[2].Rank)
	assert.Equal(t, "Poor", enriched[2].Label)
	assert.Equal(t, "F83010", enriched[2].Code)
}

func TestEnrichPracticesEmpty(t *testing.T) {
	assert.Empty(t, schema.EnrichPractices(nil))
}
