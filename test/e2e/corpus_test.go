package e2e

import (
	"testing"

	"github.com/hyperjump/hirogeru/internal/corpus"
	"github.com/hyperjump/hirogeru/internal/models"
)

func TestExtendedCorpus(t *testing.T) {
	docs := ExtendedCorpus()

	if len(docs) != 20 {
		t.Fatalf("ExtendedCorpus() returned %d documents, want 20", len(docs))
	}
	for i, doc := range docs {
		if doc.ID != i {
			t.Errorf("document %d has ID %d, want positional ID", i, doc.ID)
		}
		if doc.Text == "" {
			t.Errorf("document %d has empty text", i)
		}
	}
}

func TestExtendedCorpus_FirstFifteenAreSample(t *testing.T) {
	docs := ExtendedCorpus()
	sample := corpus.SampleDocuments()

	if len(docs) < len(sample) {
		t.Fatalf("extended corpus has %d documents, sample has %d", len(docs), len(sample))
	}
	for i, want := range sample {
		if docs[i].Text != want.Text {
			t.Errorf("document %d text diverges from the sample corpus", i)
		}
	}
}

func TestReferenceQueries(t *testing.T) {
	docs := ExtendedCorpus()
	cases := ReferenceQueries()

	if len(cases) == 0 {
		t.Fatal("no reference queries defined")
	}

	seen := make(map[string]bool, len(cases))
	for _, tc := range cases {
		if tc.Query == "" {
			t.Errorf("case %q has empty query", tc.Description)
		}
		if seen[tc.Query] {
			t.Errorf("duplicate query %q", tc.Query)
		}
		seen[tc.Query] = true

		if len(tc.ExpectedDocIDs) == 0 {
			t.Errorf("case %q has no expected documents", tc.Description)
			continue
		}
		for _, id := range tc.ExpectedDocIDs {
			if id < 0 || id >= len(docs) {
				t.Errorf("case %q expects document %d, corpus has %d", tc.Description, id, len(docs))
				continue
			}
			// Retrieval keys on token overlap, so an expected document must
			// share at least one content word with its query.
			if !sharesQueryTerm(docs[id], tc.Query) {
				t.Errorf("case %q: document %d shares no content word with the query", tc.Description, id)
			}
		}
	}
}

func TestSharesQueryTerm(t *testing.T) {
	tests := []struct {
		text   string
		query  string
		shared bool
	}{
		{"Sea level rise threatens coastal cities.", "sea level projections", true},
		{"Renewable energy deployment accelerated.", "renewable transition", true},
		{"Ocean acidification harms shellfish.", "carbon taxes", false},
		{"Short words only.", "a an it of", false},
	}
	for i, tt := range tests {
		got := sharesQueryTerm(models.Document{Text: tt.text}, tt.query)
		if got != tt.shared {
			t.Errorf("test %d: sharesQueryTerm(%q, %q) = %v, want %v", i, tt.text, tt.query, got, tt.shared)
		}
	}
}
