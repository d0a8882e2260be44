// Package vector provides the factory selecting between index backends.
package vector

import "fmt"

// IndexType names a vector index backend.
type IndexType string

const (
	// IndexTypeMemory selects the exact brute-force index. No native
	// dependencies, handles corpora up to the tens of thousands.
	IndexTypeMemory IndexType = "memory"
	// IndexTypeFAISS selects the FAISS flat inner-product index. Needs the
	// FAISS C library and a build with -tags=faiss.
	IndexTypeFAISS IndexType = "faiss"
)

// NewIndex returns an empty index of the named backend. An empty name falls
// back to the memory index. Asking for faiss in a binary built without FAISS
// support returns an error rather than a degraded index.
func NewIndex(indexType string, dimensions int) (Index, error) {
	switch IndexType(indexType) {
	case IndexTypeMemory, "":
		return NewMemoryIndex(dimensions)
	case IndexTypeFAISS:
		return NewFAISSIndex(dimensions)
	default:
		return nil, fmt.Errorf("unknown index type %q (supported: %s, %s)",
			indexType, IndexTypeMemory, IndexTypeFAISS)
	}
}

// IsFAISSAvailable reports whether FAISS support was compiled into this
// binary. Callers use it to degrade to the memory index instead of failing.
func IsFAISSAvailable() bool {
	idx, err := NewFAISSIndex(1)
	if err != nil {
		return false
	}
	_ = idx.Close()
	return true
}
