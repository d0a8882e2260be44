// Package integration exercises the optimize pipeline against real storage.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hyperjump/hirogeru/internal/cli"
	"github.com/hyperjump/hirogeru/internal/config"
	"github.com/hyperjump/hirogeru/internal/corpus"
	"github.com/hyperjump/hirogeru/internal/embedding"
	"github.com/hyperjump/hirogeru/internal/expansion"
	"github.com/hyperjump/hirogeru/internal/models"
	"github.com/hyperjump/hirogeru/internal/search"
	"github.com/hyperjump/hirogeru/internal/storage"
	"github.com/hyperjump/hirogeru/internal/vector"
)

func TestIntegration_OptimizePersistReport(t *testing.T) {
	dir := t.TempDir()

	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		content := "Variant 1: dangers identified in climate assessments\n" +
			"Variant 2: hazards documented by climate research\n" +
			"Variant 3: threats outlined in climate studies"
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer stub.Close()

	cfg := &config.Config{
		Storage:   config.StorageConfig{DatabasePath: filepath.Join(dir, "runs.db")},
		Embedding: config.EmbeddingConfig{Dimensions: 128},
		Expansion: config.ExpansionConfig{
			APIKey:      "test-key",
			BaseURL:     stub.URL,
			Model:       "grok-beta",
			TimeoutSec:  5,
			MaxRetries:  2,
			NumVariants: 3,
		},
		Retrieval: config.RetrievalConfig{TopK: 5, IndexType: string(vector.IndexTypeMemory)},
	}

	store, err := storage.NewSQLiteStorage(cfg.Storage.DatabasePath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	embedder := embedding.NewHashEmbedder(cfg.Embedding.Dimensions)
	defer embedder.Close()

	expander := expansion.NewGrokExpander(&cfg.Expansion)
	engine := search.NewEngine(embedder, expander, &cfg.Retrieval)
	defer engine.Close()

	ctx := context.Background()
	docs := corpus.SampleDocuments()
	if err := engine.BuildIndex(ctx, docs); err != nil {
		t.Fatal(err)
	}
	if err := store.ReplaceDocuments(ctx, docs); err != nil {
		t.Fatal(err)
	}

	result, err := engine.Optimize(ctx, &models.OptimizeRequest{Query: "Key risks in climate reports?", TopK: 5})
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Variants) != 3 {
		t.Fatalf("got %d variants, want 3", len(result.Variants))
	}
	if result.Metrics.TotalUniqueDocuments != len(result.Aggregated) {
		t.Errorf("TotalUniqueDocuments = %d, len(Aggregated) = %d",
			result.Metrics.TotalUniqueDocuments, len(result.Aggregated))
	}
	if len(result.Aggregated) == 0 {
		t.Fatal("no aggregated results")
	}

	run := &models.Run{Query: result.Query, Variants: result.Variants, Metrics: result.Metrics}
	if err := store.SaveRun(ctx, run); err != nil {
		t.Fatal(err)
	}
	if run.ID == "" {
		t.Fatal("SaveRun did not assign an ID")
	}

	got, err := store.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Query != result.Query {
		t.Errorf("stored query = %q, want %q", got.Query, result.Query)
	}
	if len(got.Variants) != len(result.Variants) {
		t.Errorf("stored %d variants, want %d", len(got.Variants), len(result.Variants))
	}
	if got.Metrics.TotalUniqueDocuments != result.Metrics.TotalUniqueDocuments {
		t.Errorf("stored unique count = %d, want %d",
			got.Metrics.TotalUniqueDocuments, result.Metrics.TotalUniqueDocuments)
	}
	if got.CreatedAt.IsZero() {
		t.Error("stored run has zero CreatedAt")
	}

	runCount, err := store.CountRuns(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if runCount != 1 {
		t.Errorf("run count = %d, want 1", runCount)
	}
	docCount, err := store.CountDocuments(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if docCount != int64(len(docs)) {
		t.Errorf("document count = %d, want %d", docCount, len(docs))
	}

	var buf bytes.Buffer
	if err := cli.WriteResult(&buf, result, cli.OutputText, false); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"OPTIMIZED RETRIEVAL RESULTS", "PERFORMANCE METRICS", "doc_", result.Query} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q", want)
		}
	}

	reportPath := filepath.Join(dir, "report.json")
	if err := cli.SaveReport(reportPath, result); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatal(err)
	}
	var report models.Report
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if report.OriginalQuery != result.Query {
		t.Errorf("report query = %q, want %q", report.OriginalQuery, result.Query)
	}
	if len(report.AggregatedResults) != len(result.Aggregated) {
		t.Errorf("report has %d results, want %d", len(report.AggregatedResults), len(result.Aggregated))
	}
	if !strings.HasPrefix(report.AggregatedResults[0].DocID, "doc_") {
		t.Errorf("report doc ID %q lacks doc_ prefix", report.AggregatedResults[0].DocID)
	}
}
