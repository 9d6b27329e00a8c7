package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/tabwork/sheetrecon/pkg/batch"
	"github.com/tabwork/sheetrecon/pkg/compare"
)

// writeOutput renders v in the requested format. The text renderer is
// type-specific; json and yaml marshal the value as-is.
func writeOutput[T any](w io.Writer, format string, v T, text func(io.Writer, T)) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "text", "":
		text(w, v)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// renderResult prints a single comparison result.
func renderResult(w io.Writer, r *compare.Result) {
	fmt.Fprintf(w, "%s vs %s\n", r.Source, r.Target)
	fmt.Fprintf(w, "  status:     %s (%s)\n", r.Status, r.SimilarityLevel)
	fmt.Fprintf(w, "  similarity: %.1f%%\n", r.SimilarityPercentage*100)
	fmt.Fprintf(w, "  rows:       %d total, %d matching, %d different\n",
		r.TotalRows, r.MatchingRows, r.DifferentRows)
	fmt.Fprintf(w, "  headers:    %d matched", r.MatchedHeaders)
	if len(r.MissingHeaders) > 0 {
		fmt.Fprintf(w, ", missing %v", r.MissingHeaders)
	}
	if len(r.ExtraHeaders) > 0 {
		fmt.Fprintf(w, ", extra %v", r.ExtraHeaders)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  summary:    %s\n", r.SummaryMessage)
	for _, sample := range r.SampleDifferences {
		fmt.Fprintf(w, "  - %s\n", sample)
	}
}

// renderReport prints a batch report with per-file summaries.
func renderReport(w io.Writer, report *batch.Report) {
	fmt.Fprintf(w, "run %s (%s, %d comparisons)\n", report.RunID, report.Duration, len(report.Results))
	for _, summary := range report.Summaries {
		fmt.Fprintf(w, "\n%s: %s\n", summary.FileID, summary.OverallStatus)
		for _, c := range summary.Comparisons {
			fmt.Fprintf(w, "  %s vs %s: %s (%.1f%%)\n",
				c.Source, c.Target, c.Status, c.SimilarityPercentage*100)
		}
	}
}
