//go:build cgo
// +build cgo

// Package embedding provides the ONNX-backed embedder (requires CGO and the
// onnxruntime shared library).
package embedding

import (
	"context"
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/hyperjump/hirogeru/pkg/utils"
)

// ONNXEmbedder runs a sentence-embedding model through ONNX Runtime.
// Tensors are allocated once and rewritten per inference, and recent
// embeddings are served from an LRU cache keyed by text.
type ONNXEmbedder struct {
	session    *ort.AdvancedSession
	dimensions int
	maxTokens  int
	cache      *EmbeddingCache
	tokenizer  Tokenizer
	tensors    sessionTensors
	mu         sync.Mutex // serializes inference; the tensors are shared
}

// sessionTensors holds the input and output tensors bound to the session.
type sessionTensors struct {
	inputIDs      *ort.Tensor[int64]
	attentionMask *ort.Tensor[int64]
	tokenTypeIDs  *ort.Tensor[int64]
	output        *ort.Tensor[float32]
}

func newSessionTensors(maxTokens, dimensions int) (sessionTensors, error) {
	var st sessionTensors
	var err error
	if st.inputIDs, err = ort.NewTensor(ort.NewShape(1, int64(maxTokens)), make([]int64, maxTokens)); err != nil {
		return st, fmt.Errorf("failed to create input_ids tensor: %w", err)
	}
	if st.attentionMask, err = ort.NewTensor(ort.NewShape(1, int64(maxTokens)), make([]int64, maxTokens)); err != nil {
		st.destroy()
		return st, fmt.Errorf("failed to create attention_mask tensor: %w", err)
	}
	if st.tokenTypeIDs, err = ort.NewTensor(ort.NewShape(1, int64(maxTokens)), make([]int64, maxTokens)); err != nil {
		st.destroy()
		return st, fmt.Errorf("failed to create token_type_ids tensor: %w", err)
	}
	if st.output, err = ort.NewTensor(ort.NewShape(1, int64(dimensions)), make([]float32, dimensions)); err != nil {
		st.destroy()
		return st, fmt.Errorf("failed to create output tensor: %w", err)
	}
	return st, nil
}

// destroy frees every allocated tensor. Safe to call with some fields nil.
func (st *sessionTensors) destroy() {
	if st.inputIDs != nil {
		_ = st.inputIDs.Destroy()
		st.inputIDs = nil
	}
	if st.attentionMask != nil {
		_ = st.attentionMask.Destroy()
		st.attentionMask = nil
	}
	if st.tokenTypeIDs != nil {
		_ = st.tokenTypeIDs.Destroy()
		st.tokenTypeIDs = nil
	}
	if st.output != nil {
		_ = st.output.Destroy()
		st.output = nil
	}
}

// NewONNXEmbedder loads the model at modelPath and prepares a reusable
// inference session. InitializeEnvironment is called if not already done.
func NewONNXEmbedder(modelPath string, dimensions, maxTokens, cacheSize int) (*ONNXEmbedder, error) {
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("failed to initialize ONNX runtime: %w", err)
	}

	tensors, err := newSessionTensors(maxTokens, dimensions)
	if err != nil {
		return nil, err
	}

	session, err := ort.NewAdvancedSession(
		modelPath,
		[]string{"input_ids", "attention_mask", "token_type_ids"},
		[]string{"output"},
		[]ort.ArbitraryTensor{tensors.inputIDs, tensors.attentionMask, tensors.tokenTypeIDs},
		[]ort.ArbitraryTensor{tensors.output},
		nil,
	)
	if err != nil {
		tensors.destroy()
		return nil, fmt.Errorf("failed to create ONNX session: %w", err)
	}

	return &ONNXEmbedder{
		session:    session,
		dimensions: dimensions,
		maxTokens:  maxTokens,
		cache:      NewEmbeddingCache(cacheSize),
		tokenizer:  &SimpleTokenizer{},
		tensors:    tensors,
	}, nil
}

// Embed returns the normalized embedding for text, from cache when possible.
func (e *ONNXEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if cached, ok := e.cache.Get(text); ok {
		return cached, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	inputIDs, attentionMask, tokenTypeIDs := e.tokenizer.Tokenize(text, e.maxTokens)
	copy(e.tensors.inputIDs.GetData(), inputIDs)
	copy(e.tensors.attentionMask.GetData(), attentionMask)
	copy(e.tensors.tokenTypeIDs.GetData(), tokenTypeIDs)

	if err := e.session.Run(); err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}

	embedding := make([]float32, e.dimensions)
	copy(embedding, e.tensors.output.GetData()[:e.dimensions])
	utils.NormalizeL2(embedding)

	e.cache.Set(text, embedding)
	return embedding, nil
}

// EmbedBatch embeds each text in order.
func (e *ONNXEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		emb, err := e.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		embeddings[i] = emb
	}
	return embeddings, nil
}

// Dimensions returns the embedding dimension.
func (e *ONNXEmbedder) Dimensions() int {
	return e.dimensions
}

// Close destroys the session and its tensors.
func (e *ONNXEmbedder) Close() error {
	var err error
	if e.session != nil {
		err = e.session.Destroy()
		e.session = nil
	}
	e.tensors.destroy()
	return err
}
