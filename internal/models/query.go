package models

import (
	"fmt"
	"strings"
)

// OptimizeRequest is a multi-query retrieval request.
type OptimizeRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k,omitempty"`
}

// Validate ensures the request has valid fields and sets defaults.
// Returns an error if the query is blank; otherwise normalizes TopK.
func (r *OptimizeRequest) Validate() error {
	r.Query = strings.TrimSpace(r.Query)
	if r.Query == "" {
		return fmt.Errorf("query cannot be empty")
	}
	if r.TopK <= 0 {
		r.TopK = 5
	}
	if r.TopK > 100 {
		r.TopK = 100
	}
	return nil
}
