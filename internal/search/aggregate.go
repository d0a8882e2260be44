package search

import (
	"sort"

	"github.com/hyperjump/hirogeru/internal/models"
)

// LabeledResults holds the hits of a single retrieval pass together with
// the label of the query that produced them.
type LabeledResults struct {
	Label   string
	Results []models.SearchResult
}

// Aggregate merges per-query result sets into one deduplicated ranking.
// A document found by several queries keeps its maximum score, and
// RetrievedBy lists every query label that found it in sorted order.
// Results are ordered by score descending, document ID ascending on ties.
func Aggregate(sets []LabeledResults) []models.AggregatedResult {
	byDoc := make(map[int]*models.AggregatedResult)
	labels := make(map[int]map[string]struct{})

	for _, set := range sets {
		for _, r := range set.Results {
			agg, ok := byDoc[r.DocID]
			if !ok {
				byDoc[r.DocID] = &models.AggregatedResult{
					DocID: r.DocID,
					Score: r.Score,
					Text:  r.Text,
				}
				labels[r.DocID] = map[string]struct{}{set.Label: {}}
				continue
			}
			if r.Score > agg.Score {
				agg.Score = r.Score
			}
			labels[r.DocID][set.Label] = struct{}{}
		}
	}

	results := make([]models.AggregatedResult, 0, len(byDoc))
	for id, agg := range byDoc {
		names := make([]string, 0, len(labels[id]))
		for label := range labels[id] {
			names = append(names, label)
		}
		sort.Strings(names)
		agg.RetrievedBy = names
		results = append(results, *agg)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].DocID < results[j].DocID
	})
	return results
}
