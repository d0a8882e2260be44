package benchmark

import (
	"context"
	"fmt"
	"testing"

	"github.com/hyperjump/hirogeru/internal/config"
	"github.com/hyperjump/hirogeru/internal/corpus"
	"github.com/hyperjump/hirogeru/internal/embedding"
	"github.com/hyperjump/hirogeru/internal/models"
	"github.com/hyperjump/hirogeru/internal/search"
	"github.com/hyperjump/hirogeru/internal/vector"
)

func BenchmarkMemoryIndexSearch(b *testing.B) {
	idx, _ := vector.NewMemoryIndex(384)
	ctx := context.Background()
	vecs := make([][]float32, 1000)
	for i := 0; i < 1000; i++ {
		vecs[i] = make([]float32, 384)
		vecs[i][0] = float32(i) / 1000
	}
	_ = idx.Add(ctx, vecs)
	query := make([]float32, 384)
	query[0] = 1.0
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = idx.Search(ctx, query, 10)
	}
}

func BenchmarkHashEmbedder_Embed(b *testing.B) {
	e := embedding.NewHashEmbedder(384)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.Embed(ctx, "benchmark query text for embedding")
	}
}

func BenchmarkAggregate(b *testing.B) {
	labels := []string{"Original", "Variant 1", "Variant 2", "Variant 3"}
	sets := make([]search.LabeledResults, len(labels))
	for i, label := range labels {
		results := make([]models.SearchResult, 100)
		for j := range results {
			results[j] = models.SearchResult{
				DocID: (i*37 + j) % 150,
				Score: float64(100-j) / 100,
				Text:  "benchmark document text",
			}
		}
		sets[i] = search.LabeledResults{Label: label, Results: results}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = search.Aggregate(sets)
	}
}

// fixedExpander returns canned variants without network access.
type fixedExpander struct{}

func (fixedExpander) Expand(_ context.Context, query string) ([]string, error) {
	return []string{
		fmt.Sprintf("%s explained with specific details", query),
		fmt.Sprintf("key factors behind %s", query),
		fmt.Sprintf("consequences and implications of %s", query),
	}, nil
}

func BenchmarkOptimize(b *testing.B) {
	embedder := embedding.NewHashEmbedder(256)
	defer embedder.Close()
	engine := search.NewEngine(embedder, fixedExpander{}, &config.RetrievalConfig{
		TopK:      5,
		IndexType: string(vector.IndexTypeMemory),
	})
	defer engine.Close()

	ctx := context.Background()
	if err := engine.BuildIndex(ctx, corpus.SampleDocuments()); err != nil {
		b.Fatal(err)
	}
	req := &models.OptimizeRequest{Query: "Key risks in climate reports?", TopK: 5}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Optimize(ctx, req); err != nil {
			b.Fatal(err)
		}
	}
}
