package embedding

import "testing"

func TestEmbeddingCache_GetSet(t *testing.T) {
	c := NewEmbeddingCache(4)
	if v, ok := c.Get("missing"); ok || v != nil {
		t.Fatalf("expected miss, got %v", v)
	}
	c.Set("query", []float32{1, 2, 3})
	v, ok := c.Get("query")
	if !ok || len(v) != 3 || v[0] != 1 {
		t.Errorf("Get = %v, %v", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestEmbeddingCache_UpdateExisting(t *testing.T) {
	c := NewEmbeddingCache(4)
	c.Set("query", []float32{1})
	c.Set("query", []float32{2})
	v, ok := c.Get("query")
	if !ok || v[0] != 2 {
		t.Errorf("Get after update = %v, %v", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestEmbeddingCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewEmbeddingCache(2)
	c.Set("a", []float32{1})
	c.Set("b", []float32{2})

	// Touch a so b becomes the eviction candidate.
	if _, ok := c.Get("a"); !ok {
		t.Fatal("a should be cached")
	}
	c.Set("c", []float32{3})

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("a should survive, it was used most recently")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("c should be cached")
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
}
