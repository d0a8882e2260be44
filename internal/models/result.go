package models

import (
	"fmt"

	"github.com/hyperjump/hirogeru/pkg/utils"
)

// SearchResult is a single nearest-neighbor hit for one query.
type SearchResult struct {
	DocID int     `json:"doc_id"`
	Score float64 `json:"score"`
	Text  string  `json:"text"`
}

// AggregatedResult is a document retrieved by one or more queries. Score is
// the maximum score across those queries and RetrievedBy holds their labels
// in sorted order.
type AggregatedResult struct {
	DocID       int      `json:"doc_id"`
	Score       float64  `json:"score"`
	RetrievedBy []string `json:"retrieved_by"`
	Text        string   `json:"text"`
}

// Metrics summarizes a single optimization run.
// BaselineDocuments counts hits for the original query alone;
// TotalUniqueDocuments counts distinct documents across all queries.
type Metrics struct {
	BaselineDocuments    int     `json:"baseline_documents"`
	TotalUniqueDocuments int     `json:"total_unique_documents"`
	RecallImprovementPct float64 `json:"recall_improvement_pct"`
	ProcessingTimeSec    float64 `json:"processing_time_sec"`
	AvgSimilarityScore   float64 `json:"avg_similarity_score"`
}

// Report is the serializable form of an optimization run, used for the
// JSON export file and the HTTP API response.
type Report struct {
	OriginalQuery     string         `json:"original_query"`
	Variants          []string       `json:"variants"`
	Metrics           Metrics        `json:"metrics"`
	AggregatedResults []ReportResult `json:"aggregated_results"`
}

// ReportResult is one aggregated hit in a Report. DocID is rendered as
// "doc_<n>" and Text is truncated to 200 characters.
type ReportResult struct {
	DocID       string   `json:"doc_id"`
	Score       float64  `json:"score"`
	RetrievedBy []string `json:"retrieved_by"`
	Text        string   `json:"text"`
}

// NewReport builds a Report from an optimization outcome.
func NewReport(query string, variants []string, metrics Metrics, results []AggregatedResult) *Report {
	if variants == nil {
		variants = []string{}
	}
	report := &Report{
		OriginalQuery:     query,
		Variants:          variants,
		Metrics:           metrics,
		AggregatedResults: make([]ReportResult, 0, len(results)),
	}
	for _, r := range results {
		report.AggregatedResults = append(report.AggregatedResults, ReportResult{
			DocID:       fmt.Sprintf("doc_%d", r.DocID),
			Score:       r.Score,
			RetrievedBy: r.RetrievedBy,
			Text:        utils.Truncate(r.Text, 200),
		})
	}
	return report
}
