// Package embedding turns queries, variants, and corpus documents into
// L2-normalized vectors. An ONNX model backs production embeddings; the
// deterministic hash embedder covers builds and environments without one.
package embedding

import "context"

// Embedder produces embedding vectors for text. Implementations return
// vectors of a fixed dimension so one index serves queries and documents.
type Embedder interface {
	// Embed returns the embedding for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)
	// EmbedBatch returns one embedding per input text, in order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	// Dimensions is the length of every vector this embedder produces.
	Dimensions() int
	// Close releases model resources. Safe on embedders without any.
	Close() error
}
