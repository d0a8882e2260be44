//go:build !faiss || !cgo
// +build !faiss !cgo

// Package vector provides the FAISS placeholder compiled in builds without FAISS.
package vector

import (
	"context"
	"errors"
)

// ErrFAISSUnavailable is returned when FAISS support was not compiled in.
// Building with CGO enabled and -tags=faiss replaces this stub.
var ErrFAISSUnavailable = errors.New("FAISS support not compiled in (build with -tags=faiss)")

// FAISSIndex stands in for the real index so the faiss backend name stays
// resolvable. NewFAISSIndex always fails, so no instance ever reaches use;
// the methods exist only to satisfy the Index interface.
type FAISSIndex struct{}

// NewFAISSIndex reports that this binary lacks FAISS support.
func NewFAISSIndex(dimensions int) (*FAISSIndex, error) {
	return nil, ErrFAISSUnavailable
}

func (f *FAISSIndex) Add(ctx context.Context, vectors [][]float32) error {
	return ErrFAISSUnavailable
}

func (f *FAISSIndex) Search(ctx context.Context, query []float32, k int) ([]*Result, error) {
	return nil, ErrFAISSUnavailable
}

func (f *FAISSIndex) Size() int { return 0 }

func (f *FAISSIndex) Close() error { return nil }

// Type returns the faiss backend name.
func (f *FAISSIndex) Type() string {
	return string(IndexTypeFAISS)
}
