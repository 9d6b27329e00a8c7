// Package compare implements the worksheet reconciliation engine: header
// matching despite renaming drift, indexed row matching despite reordering,
// similarity scoring, and status/level classification of the outcome.
//
// The engine is computationally pure: a Comparator holds configuration only,
// every comparison owns its own consumed-sets, and comparisons of distinct
// worksheet pairs may run concurrently without synchronization.
package compare

import (
	"context"
	"fmt"
	"strings"

	"github.com/tabwork/sheetrecon/pkg/datasets"
	"github.com/tabwork/sheetrecon/pkg/errors"
	"github.com/tabwork/sheetrecon/pkg/logging"
)

// Comparator reconciles one pair of worksheets at a time.
type Comparator interface {
	// Compare reconciles source against target. It always returns a result;
	// internal faults are recovered and downgraded to an Error-status result,
	// never surfaced as a panic or error value.
	Compare(ctx context.Context, source, target *datasets.Dataset) *Result
}

// comparator is the default implementation of Comparator.
type comparator struct {
	opts *Options
}

// New creates a Comparator with the given options.
func New(opts ...Option) Comparator {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &comparator{opts: o}
}

// Compare reconciles source against target.
func (c *comparator) Compare(ctx context.Context, source, target *datasets.Dataset) (result *Result) {
	// Nothing inside the engine is allowed to escape as a failure; an
	// unexpected fault becomes an Error-classified result.
	defer func() {
		if r := recover(); r != nil {
			err := errors.NewComparisonError(datasetName(source), datasetName(target), fmt.Errorf("%v", r))
			logging.FromContext(ctx).Error().Err(err).Msg("Worksheet comparison failed")
			result = errorResult(source, target, err.Error())
		}
	}()

	if source == nil || target == nil {
		return errorResult(source, target, "dataset is nil")
	}

	result = &Result{
		Source: source.Name,
		Target: target.Name,
	}

	t := c.opts.Thresholds

	matches, pairs := matchHeaders(source.Headers, target.Headers, t)
	result.HeaderMatches = matches
	result.MatchedHeaders = len(pairs)
	result.MissingHeaders = missingHeaders(matches)
	result.ExtraHeaders = extraHeaders(target.Headers, pairs)
	result.HeadersMatch = headersCompatible(len(pairs), len(source.Headers), len(target.Headers), t.HeaderGate)

	if !result.HeadersMatch {
		structural := errors.NewStructuralError(source.Name, target.Name, len(pairs),
			requiredHeaders(len(source.Headers), len(target.Headers), t.HeaderGate))
		logging.FromContext(ctx).Warn().
			Str("source", source.Name).
			Str("target", target.Name).
			Int("matched_headers", len(pairs)).
			Msg("Header structures are not compatible")

		result.TotalRows = totalRows(source, target)
		result.DifferentRows = result.TotalRows
		result.SimilarityPercentage = 0.0
		result.SimilarityLevel = LevelDifferent
		result.Status = StatusError
		result.SummaryMessage = structural.Error()
		return result
	}

	matcher := newRowMatcher(target, pairs, c.opts)
	outcomes := make([]RowOutcome, 0, len(source.Rows))
	for i, row := range source.Rows {
		// One cancellation check per source row keeps worst-case latency
		// bounded on adversarial inputs.
		if err := ctx.Err(); err != nil {
			return errorResult(source, target, errors.ErrCanceled.Error())
		}
		outcomes = append(outcomes, matcher.match(i, row))
	}

	matching := 0
	for _, o := range outcomes {
		if o.Matched() {
			matching++
		}
	}

	result.TotalRows = totalRows(source, target)
	result.MatchingRows = matching
	result.DifferentRows = result.TotalRows - matching

	if len(source.Rows) == 0 {
		result.SimilarityPercentage = 1.0
	} else {
		result.SimilarityPercentage = float64(matching) / float64(len(source.Rows))
	}

	result.SimilarityLevel = classifyLevel(t, result.SimilarityPercentage)
	result.Status = classifyStatus(t, result.SimilarityPercentage)
	result.SummaryMessage = summaryMessage(result.Status, result.SimilarityLevel, result.SimilarityPercentage)
	result.SampleDifferences = sampleDifferences(outcomes, c.opts.MaxDiffSamples)

	return result
}

// errorResult builds the zeroed Error-status result used for recovered
// faults, nil inputs, and cancellation.
func errorResult(source, target *datasets.Dataset, message string) *Result {
	total := totalRows(source, target)
	return &Result{
		Source:               datasetName(source),
		Target:               datasetName(target),
		TotalRows:            total,
		DifferentRows:        total,
		SimilarityPercentage: 0.0,
		SimilarityLevel:      LevelDifferent,
		Status:               StatusError,
		SummaryMessage:       message,
	}
}

// datasetName tolerates nil datasets on the failure paths.
func datasetName(d *datasets.Dataset) string {
	if d == nil {
		return ""
	}
	return d.Name
}

// totalRows is the larger of the two row counts.
func totalRows(source, target *datasets.Dataset) int {
	a, b := 0, 0
	if source != nil {
		a = len(source.Rows)
	}
	if target != nil {
		b = len(target.Rows)
	}
	if a > b {
		return a
	}
	return b
}

// requiredHeaders is the matched-header count the structural gate demands.
func requiredHeaders(lenA, lenB int, gate float64) int {
	minLen := lenA
	if lenB < minLen {
		minLen = lenB
	}
	required := int(gate * float64(minLen))
	if float64(required) < gate*float64(minLen) {
		required++
	}
	return required
}

// missingHeaders lists source headers that claimed no target header.
func missingHeaders(matches []HeaderMatch) []string {
	var out []string
	for _, m := range matches {
		if !m.Matched() {
			out = append(out, m.Source)
		}
	}
	return out
}

// extraHeaders lists target headers left unclaimed by the mapping.
func extraHeaders(headersB []string, pairs []headerPair) []string {
	claimed := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		claimed[p.target] = true
	}

	var out []string
	for _, h := range headersB {
		if !claimed[h] {
			out = append(out, h)
		}
	}
	return out
}

// sampleDifferences collects up to max row-level samples from unmatched and
// low-similarity rows, in source-row order.
func sampleDifferences(outcomes []RowOutcome, max int) []string {
	var samples []string
	for _, o := range outcomes {
		if len(samples) >= max {
			break
		}
		switch {
		case !o.Matched():
			samples = append(samples, fmt.Sprintf("Row %d: no matching row found", o.SourceRow+1))
		case len(o.FieldDiffs) > 0:
			samples = append(samples, fmt.Sprintf("Row %d: %s", o.SourceRow+1, strings.Join(o.FieldDiffs, "; ")))
		}
	}
	return samples
}
