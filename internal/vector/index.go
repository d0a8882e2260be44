// Package vector provides nearest-neighbor indexes over embedding vectors.
package vector

import (
	"context"
	"errors"
)

var (
	// ErrInvalidK is returned when a search is requested with k <= 0.
	ErrInvalidK = errors.New("k must be positive")
	// ErrNotBuilt is returned when a search runs against an index holding no vectors.
	ErrNotBuilt = errors.New("index not built")
)

// Index stores embedding vectors and answers top-k inner product queries.
// Vectors are labeled by insertion position, so position i holds the vector
// for document i.
type Index interface {
	Add(ctx context.Context, vectors [][]float32) error
	Search(ctx context.Context, query []float32, k int) ([]*Result, error)
	Size() int
	Close() error
}

// Result is a single nearest-neighbor hit. Score is the inner product, which
// equals cosine similarity for normalized vectors.
type Result struct {
	ID    int
	Score float64
}
