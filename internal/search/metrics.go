package search

import (
	"time"

	"github.com/hyperjump/hirogeru/internal/models"
	"github.com/hyperjump/hirogeru/pkg/utils"
)

// ComputeMetrics derives run metrics from an aggregated ranking.
// baselineCount is how many documents the original query retrieved on its
// own; recall improvement measures how many extra unique documents the
// variants contributed relative to that baseline.
func ComputeMetrics(aggregated []models.AggregatedResult, baselineCount int, elapsed time.Duration) models.Metrics {
	unique := len(aggregated)

	var improvement float64
	if baselineCount > 0 {
		improvement = float64(unique-baselineCount) / float64(baselineCount) * 100
	}

	scores := make([]float64, 0, len(aggregated))
	for _, r := range aggregated {
		scores = append(scores, r.Score)
	}

	return models.Metrics{
		BaselineDocuments:    baselineCount,
		TotalUniqueDocuments: unique,
		RecallImprovementPct: utils.Round(improvement, 1),
		ProcessingTimeSec:    utils.Round(elapsed.Seconds(), 2),
		AvgSimilarityScore:   utils.Round(utils.Mean(scores), 3),
	}
}
