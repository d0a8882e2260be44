// Package vector provides similarity scoring shared by the index backends.
package vector

import "math"

// InnerProduct returns the inner product of a and b. Embeddings are stored
// L2-normalized, so this is the cosine similarity of the underlying texts.
// Mismatched or empty vectors score zero.
func InnerProduct(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var sum float64
	for i, v := range a {
		sum += float64(v) * float64(b[i])
	}
	return sum
}

// L2Norm returns the Euclidean length of x.
func L2Norm(x []float32) float64 {
	var sq float64
	for _, v := range x {
		sq += float64(v) * float64(v)
	}
	return math.Sqrt(sq)
}
