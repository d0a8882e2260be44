package utils

import "math"

// NormalizeL2 rescales x in place to unit L2 norm, so that inner products
// over the index behave as cosine similarity. Zero vectors are left as-is.
func NormalizeL2(x []float32) {
	var sq float32
	for _, v := range x {
		sq += v * v
	}
	if sq == 0 {
		return
	}
	inv := float32(1.0 / math.Sqrt(float64(sq)))
	for i := range x {
		x[i] *= inv
	}
}

// Round rounds x to the given number of decimal places (half away from zero).
func Round(x float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(x*shift) / shift
}

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
