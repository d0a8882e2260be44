package expansion

import (
	"fmt"
	"strings"
)

// FallbackVariants returns deterministic rule-based variants for when the
// expansion API is unreachable. The same query always yields the same
// variants.
func FallbackVariants(query string, n int) []string {
	stem := strings.TrimRight(strings.ToLower(query), "?")
	variants := []string{
		fmt.Sprintf("What are the key aspects of %s?", stem),
		fmt.Sprintf("Explain the main concepts related to %s", stem),
		fmt.Sprintf("Provide detailed information about %s", stem),
	}
	if n > 0 && n < len(variants) {
		variants = variants[:n]
	}
	return variants
}
