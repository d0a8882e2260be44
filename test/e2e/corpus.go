// Package e2e provides end-to-end tests over an extended climate corpus with
// reference queries.
package e2e

import (
	"strings"

	"github.com/hyperjump/hirogeru/internal/corpus"
	"github.com/hyperjump/hirogeru/internal/models"
)

// QueryCase defines a reference query and the document ID(s) of which at
// least one must appear in the aggregated results.
type QueryCase struct {
	Query          string
	ExpectedDocIDs []int
	Description    string
}

// extendedTexts are appended to the built-in sample corpus, continuing its
// positional IDs (15..19).
var extendedTexts = []string{
	"Arctic amplification causes the polar regions to warm two to four times faster than the global average. Loss of reflective sea ice exposes dark ocean water, reinforcing regional warming through the ice-albedo feedback and altering jet stream behavior.",

	"Agricultural systems face mounting pressure from shifting precipitation patterns, heat stress on crops and livestock, and expanding ranges of pests and plant diseases under a warming climate.",

	"Renewable energy deployment accelerated over the past decade as solar and wind generation costs fell below fossil alternatives in most markets, though grid integration and storage remain engineering challenges.",

	"Climate-driven displacement is projected to affect hundreds of millions of people by mid-century, as sea level rise, desertification, and repeated crop failures make regions progressively less habitable.",

	"Carbon pricing instruments, including emissions trading systems and carbon taxes, aim to internalize the social cost of greenhouse gas emissions and steer investment toward low-carbon technologies.",
}

// ExtendedCorpus returns the 15 sample documents plus 5 additional climate
// documents, 20 in total with positional IDs.
func ExtendedCorpus() []models.Document {
	docs := corpus.SampleDocuments()
	for _, text := range extendedTexts {
		docs = append(docs, models.Document{ID: len(docs), Text: text, Source: "sample"})
	}
	return docs
}

// ReferenceQueries returns query cases whose expected documents share
// distinctive terms with the query, so retrieval over the extended corpus
// must surface at least one of them.
func ReferenceQueries() []QueryCase {
	return []QueryCase{
		{
			Query:          "Key risks in climate reports?",
			ExpectedDocIDs: []int{1, 10},
			Description:    "key risks query surfaces the risk documents",
		},
		{
			Query:          "What are climate feedback mechanisms?",
			ExpectedDocIDs: []int{3, 15},
			Description:    "feedback query surfaces the feedback documents",
		},
		{
			Query:          "Tell me about climate change",
			ExpectedDocIDs: []int{0, 1, 6, 7},
			Description:    "broad query surfaces general climate documents",
		},
		{
			Query:          "Sea level rise projections for 2100",
			ExpectedDocIDs: []int{2, 18},
			Description:    "sea level query surfaces the coastal documents",
		},
		{
			Query:          "Economic and social impacts of global warming",
			ExpectedDocIDs: []int{7, 10},
			Description:    "impact query surfaces the economic and social documents",
		},
		{
			Query:          "Reducing greenhouse gas emissions",
			ExpectedDocIDs: []int{5, 11, 19},
			Description:    "emissions query surfaces the mitigation documents",
		},
		{
			Query:          "Renewable energy transition",
			ExpectedDocIDs: []int{9, 17},
			Description:    "energy query surfaces the decarbonization documents",
		},
	}
}

// sharesQueryTerm reports whether the document text contains at least one
// content word (4+ characters) from the query.
func sharesQueryTerm(doc models.Document, query string) bool {
	text := strings.ToLower(doc.Text)
	for _, token := range strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}) {
		if len(token) < 4 {
			continue
		}
		if strings.Contains(text, token) {
			return true
		}
	}
	return false
}

func containsAnyID(got []int, expected []int) bool {
	set := make(map[int]bool, len(got))
	for _, id := range got {
		set[id] = true
	}
	for _, id := range expected {
		if set[id] {
			return true
		}
	}
	return false
}
