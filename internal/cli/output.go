// Package cli renders optimization results for the command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hyperjump/hirogeru/internal/search"
	"github.com/hyperjump/hirogeru/pkg/utils"
)

// OutputFormat is the format for result output.
type OutputFormat string

const (
	// OutputText renders the human-readable report, the default.
	OutputText OutputFormat = "text"
	// OutputJSON renders the machine-readable export.
	OutputJSON OutputFormat = "json"
)

const (
	ruleWidth       = 70
	maxTableRows    = 10
	targetRecallPct = 20
)

// WriteResult writes an optimization result to w in the given format.
// In text mode, verbose adds a document excerpt under each ranked row.
func WriteResult(w io.Writer, result *search.Result, format OutputFormat, verbose bool) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Report())
	default:
		writeResultText(w, result, verbose)
		return nil
	}
}

func writeResultText(w io.Writer, result *search.Result, verbose bool) {
	rule := strings.Repeat("=", ruleWidth)

	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "OPTIMIZED RETRIEVAL RESULTS")
	fmt.Fprintln(w, rule)

	fmt.Fprintf(w, "\nOriginal Query: %q\n", result.Query)
	fmt.Fprintf(w, "\nGenerated Variants:\n")
	for i, variant := range result.Variants {
		fmt.Fprintf(w, "   %d. %s\n", i+1, variant)
	}

	fmt.Fprintf(w, "\n%-6s %-8s %-8s %-40s\n", "Rank", "Doc ID", "Score", "Retrieved By")
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))

	for i, r := range result.Aggregated {
		if i >= maxTableRows {
			break
		}
		queries := strings.Join(r.RetrievedBy, ", ")
		if len(queries) > 38 {
			queries = queries[:35] + "..."
		}
		fmt.Fprintf(w, "%-6d %-8s %-8.3f %-40s\n",
			i+1, fmt.Sprintf("doc_%d", r.DocID), r.Score, queries)
		if verbose {
			fmt.Fprintf(w, "       └─ %s\n\n", utils.Truncate(r.Text, 100))
		}
	}

	m := result.Metrics
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "PERFORMANCE METRICS")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "  • Baseline documents (single query):    %d\n", m.BaselineDocuments)
	fmt.Fprintf(w, "  • Total unique documents (multi-query): %d\n", m.TotalUniqueDocuments)
	fmt.Fprintf(w, "  • Recall improvement:                   %+.1f%%\n", m.RecallImprovementPct)
	fmt.Fprintf(w, "  • Average similarity score:             %.3f\n", m.AvgSimilarityScore)
	fmt.Fprintf(w, "  • Total processing time:                %.2fs\n", m.ProcessingTimeSec)
	fmt.Fprintf(w, "%s\n\n", rule)

	if m.RecallImprovementPct >= targetRecallPct {
		fmt.Fprintf(w, "SUCCESS: Achieved %d%%+ recall improvement target!\n", targetRecallPct)
	} else {
		fmt.Fprintf(w, "Below target: %.1f%% improvement (target: %d%%)\n",
			m.RecallImprovementPct, targetRecallPct)
	}
}

// SaveReport writes the JSON report for a result to path.
func SaveReport(path string, result *search.Result) error {
	data, err := json.MarshalIndent(result.Report(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
