// Package utils holds small helpers shared across packages: vector math,
// text formatting, and logger construction.
package utils

// Truncate shortens s to at most maxLen characters and marks the cut with
// a trailing "...". A maxLen of zero or less disables truncation.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
