package algo

import (
	"sort"

	"github.com/huangsam/gpscore/schema"
)

// RankPractices sorts practices by composite score in descending order and
// returns the top 'limit' practices. Ties are broken by practice code so the
// order is stable across runs. A limit of 0 or less keeps every practice.
func RankPractices(results []schema.PracticeResult, limit int) []schema.PracticeResult {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Code < results[j].Code
	})
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}
