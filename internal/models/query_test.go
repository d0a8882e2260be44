package models

import (
	"testing"
)

func TestOptimizeRequest_Validate(t *testing.T) {
	tests := []struct {
		name     string
		req      *OptimizeRequest
		wantErr  bool
		wantTopK int
	}{
		{"empty query", &OptimizeRequest{Query: ""}, true, 0},
		{"whitespace query", &OptimizeRequest{Query: "   "}, true, 0},
		{"valid query", &OptimizeRequest{Query: "hello", TopK: 3}, false, 3},
		{"sets default top_k", &OptimizeRequest{Query: "x", TopK: 0}, false, 5},
		{"negative top_k defaults", &OptimizeRequest{Query: "x", TopK: -1}, false, 5},
		{"caps top_k at 100", &OptimizeRequest{Query: "x", TopK: 200}, false, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && tt.req.TopK != tt.wantTopK {
				t.Errorf("TopK = %d, want %d", tt.req.TopK, tt.wantTopK)
			}
		})
	}
}
