package compare

import (
	"fmt"
	"strings"

	"github.com/tabwork/sheetrecon/pkg/datasets"
	"github.com/tabwork/sheetrecon/pkg/similarity"
)

// rowMatcher assigns target rows to source rows one-to-one, strictly in
// source-row order. It owns the consumed-set for the duration of a single
// worksheet comparison, so no state leaks between invocations.
type rowMatcher struct {
	target   *datasets.Dataset
	pairs    []headerPair
	index    *rowIndex
	consumed map[int]bool
	opts     *Options
}

// newRowMatcher builds a matcher for one worksheet pair.
func newRowMatcher(target *datasets.Dataset, pairs []headerPair, opts *Options) *rowMatcher {
	return &rowMatcher{
		target:   target,
		pairs:    pairs,
		index:    buildRowIndex(target, pairs, opts.IndexHeaders),
		consumed: make(map[int]bool),
		opts:     opts,
	}
}

// match finds the best unconsumed target row for the given source row, or an
// unmatched outcome when nothing clears the match threshold. A selected
// target row is consumed for the remainder of the comparison.
func (m *rowMatcher) match(sourceIdx int, source datasets.Row) RowOutcome {
	outcome := RowOutcome{
		SourceRow: sourceIdx,
		TargetRow: UnmatchedRow,
	}

	cands := m.index.candidates(source, m.consumed)
	if len(cands) == 0 {
		cands = m.unconsumed()
	}
	if len(cands) > m.opts.CandidateCap {
		cands = cands[:m.opts.CandidateCap]
	}

	bestIdx := -1
	bestScore := 0.0
	for _, pos := range cands {
		score := m.rowSimilarity(source, m.target.Rows[pos])
		// Strictly-greater keeps the tie-break on the first candidate examined.
		if score >= m.opts.Thresholds.MatchThreshold && score > bestScore {
			bestIdx = pos
			bestScore = score
		}
	}

	if bestIdx < 0 {
		return outcome
	}

	m.consumed[bestIdx] = true
	outcome.TargetRow = bestIdx
	outcome.Similarity = bestScore
	outcome.FieldDiffs = m.fieldDiffs(source, m.target.Rows[bestIdx])
	return outcome
}

// unconsumed returns every not-yet-claimed target row position in ascending
// order. Fallback path for source rows whose indexed values hit nothing.
func (m *rowMatcher) unconsumed() []int {
	out := make([]int, 0, len(m.target.Rows)-len(m.consumed))
	for pos := range m.target.Rows {
		if !m.consumed[pos] {
			out = append(out, pos)
		}
	}
	return out
}

// rowSimilarity averages field similarity across every mapped header pair.
// Unmapped headers do not participate in row scoring.
func (m *rowMatcher) rowSimilarity(source, target datasets.Row) float64 {
	if len(m.pairs) == 0 {
		return 0.0
	}

	total := 0.0
	for _, pair := range m.pairs {
		total += similarity.Fields(source[pair.source], target[pair.target])
	}
	return total / float64(len(m.pairs))
}

// fieldDiffs lists up to MaxFieldDiffs mapped-header values that differ
// case-insensitively between a matched row pair.
func (m *rowMatcher) fieldDiffs(source, target datasets.Row) []string {
	var diffs []string
	for _, pair := range m.pairs {
		if len(diffs) >= m.opts.MaxFieldDiffs {
			break
		}
		sv := strings.TrimSpace(source[pair.source])
		tv := strings.TrimSpace(target[pair.target])
		if !strings.EqualFold(sv, tv) {
			diffs = append(diffs, fmt.Sprintf("%s: '%s' vs '%s'", pair.source, sv, tv))
		}
	}
	return diffs
}
