package expansion

import "strings"

// ParseVariants extracts up to n query variants from an LLM completion.
//
// Lines prefixed with "Variant" are split on the first colon and the
// remainder is taken verbatim. As a fallback, any other line longer than
// 20 characters is accepted unless it restates the original query, so
// completions that ignore the requested format still yield variants.
func ParseVariants(content string, n int) []string {
	variants := make([]string, 0, n)
	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Variant"):
			parts := strings.SplitN(line, ":", 2)
			if len(parts) != 2 {
				continue
			}
			text := strings.Trim(strings.Trim(strings.TrimSpace(parts[1]), `"`), `'`)
			if text != "" {
				variants = append(variants, text)
			}
		case len(line) > 20 && !strings.HasPrefix(line, "Original"):
			text := strings.TrimSpace(strings.Trim(strings.Trim(strings.Trim(line, `"`), `'`), "-"))
			if text != "" && !containsString(variants, text) {
				variants = append(variants, text)
			}
		}
	}
	if len(variants) > n {
		variants = variants[:n]
	}
	return variants
}

func containsString(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
