//go:build !cgo
// +build !cgo

package embedding

import (
	"context"
	"errors"
)

// errONNXRequiresCGO is returned by every operation of the stub embedder.
var errONNXRequiresCGO = errors.New("ONNX embedder requires CGO; build with CGO_ENABLED=1 and onnxruntime")

// ONNXEmbedder is the placeholder compiled without CGO. NewONNXEmbedder
// always fails, steering callers to the hash embedder; the methods exist so
// the type still satisfies Embedder.
type ONNXEmbedder struct{}

// NewONNXEmbedder reports that ONNX support is missing from this binary.
func NewONNXEmbedder(_ string, _, _, _ int) (*ONNXEmbedder, error) {
	return nil, errONNXRequiresCGO
}

func (e *ONNXEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return nil, errONNXRequiresCGO
}

func (e *ONNXEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, errONNXRequiresCGO
}

func (e *ONNXEmbedder) Dimensions() int { return 0 }

func (e *ONNXEmbedder) Close() error { return nil }
