package search

import (
	"testing"
	"time"

	"github.com/hyperjump/hirogeru/internal/models"
)

func TestComputeMetrics(t *testing.T) {
	aggregated := []models.AggregatedResult{
		{DocID: 0, Score: 0.9},
		{DocID: 1, Score: 0.8},
		{DocID: 2, Score: 0.7},
		{DocID: 3, Score: 0.6},
		{DocID: 4, Score: 0.5},
		{DocID: 5, Score: 0.4},
		{DocID: 6, Score: 0.3},
	}

	m := ComputeMetrics(aggregated, 5, 1234*time.Millisecond)
	if m.BaselineDocuments != 5 {
		t.Errorf("BaselineDocuments = %d, want 5", m.BaselineDocuments)
	}
	if m.TotalUniqueDocuments != 7 {
		t.Errorf("TotalUniqueDocuments = %d, want 7", m.TotalUniqueDocuments)
	}
	if m.RecallImprovementPct != 40.0 {
		t.Errorf("RecallImprovementPct = %v, want 40.0", m.RecallImprovementPct)
	}
	if m.ProcessingTimeSec != 1.23 {
		t.Errorf("ProcessingTimeSec = %v, want 1.23", m.ProcessingTimeSec)
	}
	if m.AvgSimilarityScore != 0.6 {
		t.Errorf("AvgSimilarityScore = %v, want 0.6", m.AvgSimilarityScore)
	}
}

func TestComputeMetrics_RoundsImprovement(t *testing.T) {
	aggregated := []models.AggregatedResult{
		{DocID: 0, Score: 0.5},
		{DocID: 1, Score: 0.5},
		{DocID: 2, Score: 0.5},
		{DocID: 3, Score: 0.5},
		{DocID: 4, Score: 0.5},
		{DocID: 5, Score: 0.5},
		{DocID: 6, Score: 0.5},
	}

	m := ComputeMetrics(aggregated, 3, time.Second)
	if m.RecallImprovementPct != 133.3 {
		t.Errorf("RecallImprovementPct = %v, want 133.3", m.RecallImprovementPct)
	}
}

func TestComputeMetrics_ZeroBaseline(t *testing.T) {
	m := ComputeMetrics([]models.AggregatedResult{{DocID: 0, Score: 0.5}}, 0, time.Second)
	if m.RecallImprovementPct != 0 {
		t.Errorf("RecallImprovementPct = %v, want 0 for zero baseline", m.RecallImprovementPct)
	}
}

func TestComputeMetrics_EmptyAggregated(t *testing.T) {
	m := ComputeMetrics(nil, 0, 0)
	if m.TotalUniqueDocuments != 0 {
		t.Errorf("TotalUniqueDocuments = %d, want 0", m.TotalUniqueDocuments)
	}
	if m.AvgSimilarityScore != 0 {
		t.Errorf("AvgSimilarityScore = %v, want 0", m.AvgSimilarityScore)
	}
}
