package search

import (
	"reflect"
	"testing"

	"github.com/hyperjump/hirogeru/internal/models"
)

func TestAggregate_MaxScoreWins(t *testing.T) {
	sets := []LabeledResults{
		{Label: "Original", Results: []models.SearchResult{
			{DocID: 1, Score: 0.5, Text: "shared document"},
		}},
		{Label: "Variant 1", Results: []models.SearchResult{
			{DocID: 1, Score: 0.9, Text: "shared document"},
		}},
	}

	got := Aggregate(sets)
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].Score != 0.9 {
		t.Errorf("Score = %v, want 0.9", got[0].Score)
	}
	if want := []string{"Original", "Variant 1"}; !reflect.DeepEqual(got[0].RetrievedBy, want) {
		t.Errorf("RetrievedBy = %q, want %q", got[0].RetrievedBy, want)
	}
}

func TestAggregate_LabelsSorted(t *testing.T) {
	sets := []LabeledResults{
		{Label: "Variant 2", Results: []models.SearchResult{{DocID: 0, Score: 0.4}}},
		{Label: "Variant 1", Results: []models.SearchResult{{DocID: 0, Score: 0.3}}},
		{Label: "Original", Results: []models.SearchResult{{DocID: 0, Score: 0.2}}},
	}

	got := Aggregate(sets)
	want := []string{"Original", "Variant 1", "Variant 2"}
	if !reflect.DeepEqual(got[0].RetrievedBy, want) {
		t.Errorf("RetrievedBy = %q, want %q", got[0].RetrievedBy, want)
	}
}

func TestAggregate_SortsByScoreThenID(t *testing.T) {
	sets := []LabeledResults{
		{Label: "Original", Results: []models.SearchResult{
			{DocID: 3, Score: 0.7},
			{DocID: 1, Score: 0.9},
		}},
		{Label: "Variant 1", Results: []models.SearchResult{
			{DocID: 2, Score: 0.7},
			{DocID: 5, Score: 0.9},
		}},
	}

	got := Aggregate(sets)
	wantOrder := []int{1, 5, 2, 3}
	if len(got) != len(wantOrder) {
		t.Fatalf("expected %d results, got %d", len(wantOrder), len(got))
	}
	for i, id := range wantOrder {
		if got[i].DocID != id {
			t.Errorf("position %d: DocID = %d, want %d", i, got[i].DocID, id)
		}
	}
}

func TestAggregate_DisjointSets(t *testing.T) {
	sets := []LabeledResults{
		{Label: "Original", Results: []models.SearchResult{{DocID: 0, Score: 0.8}}},
		{Label: "Variant 1", Results: []models.SearchResult{{DocID: 1, Score: 0.6}}},
		{Label: "Variant 2", Results: []models.SearchResult{{DocID: 2, Score: 0.4}}},
	}

	got := Aggregate(sets)
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	for _, r := range got {
		if len(r.RetrievedBy) != 1 {
			t.Errorf("doc %d: expected a single label, got %q", r.DocID, r.RetrievedBy)
		}
	}
}

func TestAggregate_Empty(t *testing.T) {
	got := Aggregate(nil)
	if len(got) != 0 {
		t.Errorf("expected no results, got %d", len(got))
	}
}
