package embedding

import (
	"container/list"
	"sync"
)

// EmbeddingCache is an LRU cache keyed by text. Queries and their variants
// repeat across optimize runs, so caching saves the embedding inference for
// the texts seen most recently.
type EmbeddingCache struct {
	mu       sync.Mutex
	capacity int
	byKey    map[string]*list.Element
	order    *list.List // front = most recently used
}

type cached struct {
	key       string
	embedding []float32
}

// NewEmbeddingCache creates a cache holding at most capacity embeddings.
func NewEmbeddingCache(capacity int) *EmbeddingCache {
	return &EmbeddingCache{
		capacity: capacity,
		byKey:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

// Get returns the cached embedding for key and marks it recently used.
func (c *EmbeddingCache) Get(key string) ([]float32, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.byKey[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cached).embedding, true
}

// Set stores the embedding for key. When the cache is full the least
// recently used entry is dropped.
func (c *EmbeddingCache) Set(key string, embedding []float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.byKey[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*cached).embedding = embedding
		return
	}

	c.byKey[key] = c.order.PushFront(&cached{key: key, embedding: embedding})
	if c.order.Len() > c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.order.Remove(oldest)
			delete(c.byKey, oldest.Value.(*cached).key)
		}
	}
}

// Len returns the number of cached embeddings.
func (c *EmbeddingCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
