// Package expansion generates semantic variants of a query via the Grok API,
// with deterministic rule-based fallback when the API is unavailable.
package expansion

import "context"

// Expander produces semantic variants of a query.
type Expander interface {
	Expand(ctx context.Context, query string) ([]string, error)
}
