package compare

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabwork/sheetrecon/pkg/datasets"
)

func pairsFor(headers ...string) []headerPair {
	pairs := make([]headerPair, 0, len(headers))
	for _, h := range headers {
		pairs = append(pairs, headerPair{source: h, target: h})
	}
	return pairs
}

func targetDataset(rows ...datasets.Row) *datasets.Dataset {
	ds := datasets.New("target", []string{"ID", "Name", "City"})
	for _, r := range rows {
		ds.Append(r)
	}
	return ds
}

func TestRowIndexCandidates(t *testing.T) {
	target := targetDataset(
		datasets.Row{"ID": "1", "Name": "Bob"},
		datasets.Row{"ID": "2", "Name": "Ann"},
		datasets.Row{"ID": "3", "Name": "Bob"},
	)

	idx := buildRowIndex(target, pairsFor("ID", "Name"), 3)

	// Value lookup is case-insensitive and trimmed.
	cands := idx.candidates(datasets.Row{"ID": "9", "Name": " BOB "}, nil)
	assert.Equal(t, []int{0, 2}, cands)

	// Union across indexed headers, deduplicated.
	cands = idx.candidates(datasets.Row{"ID": "2", "Name": "Ann"}, nil)
	assert.Equal(t, []int{1}, cands)

	// Consumed rows are excluded.
	cands = idx.candidates(datasets.Row{"Name": "Bob"}, map[int]bool{0: true})
	assert.Equal(t, []int{2}, cands)

	// Empty values are not indexed and not looked up.
	cands = idx.candidates(datasets.Row{"ID": "", "Name": ""}, nil)
	assert.Empty(t, cands)
}

func TestRowIndexHeaderLimit(t *testing.T) {
	target := targetDataset(datasets.Row{"ID": "1", "Name": "Bob", "City": "Rome"})

	idx := buildRowIndex(target, pairsFor("ID", "Name", "City"), 2)

	// The third mapped header is beyond the index limit.
	assert.Empty(t, idx.candidates(datasets.Row{"City": "Rome"}, nil))
	assert.Equal(t, []int{0}, idx.candidates(datasets.Row{"Name": "Bob"}, nil))
}

func TestRowMatcherInjective(t *testing.T) {
	target := targetDataset(datasets.Row{"ID": "1", "Name": "Bob"})
	pairs := pairsFor("ID", "Name")
	m := newRowMatcher(target, pairs, DefaultOptions())

	first := m.match(0, datasets.Row{"ID": "1", "Name": "Bob"})
	require.True(t, first.Matched())
	assert.Equal(t, 0, first.TargetRow)
	assert.Equal(t, 1.0, first.Similarity)

	// The single target row is consumed; an identical second source row
	// must stay unmatched.
	second := m.match(1, datasets.Row{"ID": "1", "Name": "Bob"})
	assert.False(t, second.Matched())
	assert.Equal(t, UnmatchedRow, second.TargetRow)
}

func TestRowMatcherTieBreakFirstExamined(t *testing.T) {
	// Two identical target rows: the first candidate examined wins the tie.
	target := targetDataset(
		datasets.Row{"ID": "1", "Name": "Bob"},
		datasets.Row{"ID": "1", "Name": "Bob"},
	)
	m := newRowMatcher(target, pairsFor("ID", "Name"), DefaultOptions())

	outcome := m.match(0, datasets.Row{"ID": "1", "Name": "Bob"})
	require.True(t, outcome.Matched())
	assert.Equal(t, 0, outcome.TargetRow)
}

func TestRowMatcherFallbackScan(t *testing.T) {
	// The source row's indexed values hit nothing, but a sufficiently
	// similar row exists: the fallback scan must find it.
	target := targetDataset(datasets.Row{"ID": "", "Name": ""})
	m := newRowMatcher(target, pairsFor("ID", "Name"), DefaultOptions())

	outcome := m.match(0, datasets.Row{"ID": "", "Name": ""})
	require.True(t, outcome.Matched())
	assert.Equal(t, 0, outcome.TargetRow)
	assert.Equal(t, 1.0, outcome.Similarity)
}

func TestRowMatcherThreshold(t *testing.T) {
	target := targetDataset(datasets.Row{"ID": "1", "Name": "Robert"})
	m := newRowMatcher(target, pairsFor("ID", "Name"), DefaultOptions())

	// avg(1.0, 1-4/6) is well below the 0.90 default threshold.
	outcome := m.match(0, datasets.Row{"ID": "1", "Name": "Bob"})
	assert.False(t, outcome.Matched())
}

func TestRowMatcherFieldDiffs(t *testing.T) {
	target := targetDataset(datasets.Row{"ID": "1", "Name": "Bobby", "City": "rome"})
	opts := DefaultOptions()
	opts.Thresholds.MatchThreshold = 0.80

	m := &rowMatcher{
		target:   target,
		pairs:    pairsFor("ID", "Name", "City"),
		index:    buildRowIndex(target, pairsFor("ID", "Name", "City"), opts.IndexHeaders),
		consumed: make(map[int]bool),
		opts:     opts,
	}

	outcome := m.match(0, datasets.Row{"ID": "1", "Name": "Bob", "City": "Rome"})
	require.True(t, outcome.Matched())
	// Case-only differences are not reported.
	assert.Equal(t, []string{"Name: 'Bob' vs 'Bobby'"}, outcome.FieldDiffs)
}

func TestRowMatcherCandidateCap(t *testing.T) {
	// The only similar target row sits past position 50 and the source value
	// misses the index, so the fallback scan is bounded before reaching it.
	target := datasets.New("target", []string{"Name"})
	for i := 0; i < 60; i++ {
		target.Append(datasets.Row{"Name": "row-" + strconv.Itoa(i)})
	}
	target.Rows[55] = datasets.Row{"Name": "reconciliation-needl"}

	source := datasets.Row{"Name": "reconciliation-needle"}

	m := newRowMatcher(target, pairsFor("Name"), DefaultOptions())
	assert.False(t, m.match(0, source).Matched())

	// Raising the cap brings the row back into consideration.
	opts := DefaultOptions()
	WithCandidateCap(60)(opts)
	m = newRowMatcher(target, pairsFor("Name"), opts)

	outcome := m.match(0, source)
	require.True(t, outcome.Matched())
	assert.Equal(t, 55, outcome.TargetRow)
	assert.InDelta(t, 1.0-1.0/21.0, outcome.Similarity, 1e-9)
}

func TestRowSimilarityNoMappedHeaders(t *testing.T) {
	target := targetDataset(datasets.Row{"ID": "1"})
	m := newRowMatcher(target, nil, DefaultOptions())

	assert.Equal(t, 0.0, m.rowSimilarity(datasets.Row{"ID": "1"}, target.Rows[0]))
}
