// Package search runs optimized multi-query retrieval: the original query
// and its semantic variants are searched independently over a shared vector
// index, then merged into a single deduplicated ranking.
package search

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hyperjump/hirogeru/internal/config"
	"github.com/hyperjump/hirogeru/internal/embedding"
	"github.com/hyperjump/hirogeru/internal/expansion"
	"github.com/hyperjump/hirogeru/internal/models"
	"github.com/hyperjump/hirogeru/internal/vector"
)

// OriginalLabel identifies results retrieved by the unmodified query.
const OriginalLabel = "Original"

var (
	// ErrEmptyCorpus is returned when an index build receives no documents.
	ErrEmptyCorpus = errors.New("corpus contains no documents")

	// ErrIndexNotBuilt is returned when retrieval runs before any index build.
	ErrIndexNotBuilt = errors.New("index not built, load a corpus first")
)

// Result is the outcome of one optimized retrieval run. QueryResults holds
// the raw per-label result sets the aggregation was computed from.
type Result struct {
	Query        string
	Variants     []string
	QueryResults map[string][]models.SearchResult
	Aggregated   []models.AggregatedResult
	Metrics      models.Metrics
}

// Report converts the result into its serializable form.
func (r *Result) Report() *models.Report {
	return models.NewReport(r.Query, r.Variants, r.Metrics, r.Aggregated)
}

// Engine runs optimized retrieval over an in-memory document collection.
// The index and document slice are swapped atomically on rebuild, so
// searches always observe a consistent snapshot.
type Engine struct {
	embedder  embedding.Embedder
	expander  expansion.Expander
	indexType string

	mu        sync.RWMutex
	index     vector.Index
	documents []models.Document
}

// NewEngine creates an engine with the given dependencies. The index is
// created on the first BuildIndex call.
func NewEngine(embedder embedding.Embedder, expander expansion.Expander, cfg *config.RetrievalConfig) *Engine {
	return &Engine{
		embedder:  embedder,
		expander:  expander,
		indexType: cfg.IndexType,
	}
}

// BuildIndex embeds the documents and replaces the current index with a
// fresh one built from them. Document IDs are assigned positionally.
func (e *Engine) BuildIndex(ctx context.Context, docs []models.Document) error {
	if len(docs) == 0 {
		return ErrEmptyCorpus
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Text
	}

	vectors, err := e.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed corpus: %w", err)
	}

	index, err := vector.NewIndex(e.indexType, e.embedder.Dimensions())
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	if err := index.Add(ctx, vectors); err != nil {
		index.Close()
		return fmt.Errorf("populate index: %w", err)
	}

	e.mu.Lock()
	old := e.index
	e.index = index
	e.documents = docs
	e.mu.Unlock()

	if old != nil {
		old.Close()
	}
	return nil
}

// Optimize expands the query into variants, retrieves top-k documents for
// the original and every variant in parallel, and merges the result sets.
func (e *Engine) Optimize(ctx context.Context, req *models.OptimizeRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	e.mu.RLock()
	index, documents := e.index, e.documents
	e.mu.RUnlock()
	if index == nil {
		return nil, ErrIndexNotBuilt
	}

	start := time.Now()

	variants, err := e.expander.Expand(ctx, req.Query)
	if err != nil {
		return nil, fmt.Errorf("expand query: %w", err)
	}

	type labeledQuery struct {
		label string
		text  string
	}
	queries := make([]labeledQuery, 0, len(variants)+1)
	queries = append(queries, labeledQuery{label: OriginalLabel, text: req.Query})
	for i, v := range variants {
		queries = append(queries, labeledQuery{label: fmt.Sprintf("Variant %d", i+1), text: v})
	}

	sets := make([]LabeledResults, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			hits, err := e.searchIndex(gctx, index, documents, q.text, req.TopK)
			if err != nil {
				return fmt.Errorf("search for %q: %w", q.label, err)
			}
			sets[i] = LabeledResults{Label: q.label, Results: hits}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	queryResults := make(map[string][]models.SearchResult, len(sets))
	for _, s := range sets {
		queryResults[s.Label] = s.Results
	}

	baseline := len(sets[0].Results)
	aggregated := Aggregate(sets)
	metrics := ComputeMetrics(aggregated, baseline, time.Since(start))

	return &Result{
		Query:        req.Query,
		Variants:     variants,
		QueryResults: queryResults,
		Aggregated:   aggregated,
		Metrics:      metrics,
	}, nil
}

func (e *Engine) searchIndex(ctx context.Context, index vector.Index, documents []models.Document, query string, k int) ([]models.SearchResult, error) {
	queryVec, err := e.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	hits, err := index.Search(ctx, queryVec, k)
	if err != nil {
		return nil, err
	}

	results := make([]models.SearchResult, 0, len(hits))
	for _, h := range hits {
		if h.ID < 0 || h.ID >= len(documents) {
			continue
		}
		results = append(results, models.SearchResult{
			DocID: h.ID,
			Score: h.Score,
			Text:  documents[h.ID].Text,
		})
	}
	return results, nil
}

// Documents returns the currently indexed document collection.
func (e *Engine) Documents() []models.Document {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.documents
}

// DocumentCount returns the number of indexed documents.
func (e *Engine) DocumentCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.documents)
}

// IndexSize returns the number of vectors in the index.
func (e *Engine) IndexSize() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.index == nil {
		return 0
	}
	return e.index.Size()
}

// IndexType returns the configured index backend name.
func (e *Engine) IndexType() string {
	return e.indexType
}

// Close releases the vector index.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.index == nil {
		return nil
	}
	err := e.index.Close()
	e.index = nil
	e.documents = nil
	return err
}
