package corpus

import (
	"strings"
	"testing"
)

func TestSampleDocuments(t *testing.T) {
	docs := SampleDocuments()
	if len(docs) != 15 {
		t.Fatalf("got %d documents, want 15", len(docs))
	}
	for i, doc := range docs {
		if doc.ID != i {
			t.Errorf("doc %d has ID %d", i, doc.ID)
		}
		if doc.Text == "" {
			t.Errorf("doc %d has empty text", i)
		}
		if doc.Source != "sample" {
			t.Errorf("doc %d source = %q", i, doc.Source)
		}
	}
	if !strings.Contains(docs[2].Text, "Sea level rise") {
		t.Errorf("doc 2 should cover sea level rise: %q", docs[2].Text)
	}
}

func TestSampleDocuments_Stable(t *testing.T) {
	a := SampleDocuments()
	b := SampleDocuments()
	for i := range a {
		if a[i].Text != b[i].Text {
			t.Fatalf("corpus not stable at %d", i)
		}
	}
}
