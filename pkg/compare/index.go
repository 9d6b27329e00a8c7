package compare

import (
	"strings"

	"github.com/tabwork/sheetrecon/pkg/datasets"
)

// rowIndex is an inverted lookup from normalized leading-column values to
// target row positions. It turns row matching from a full cross-product into
// a scan over a small candidate set.
type rowIndex struct {
	// keys are "targetHeader:normalizedValue"
	entries map[string][]int
	// pairs are the mapped header pairs the index was built over, in
	// mapping order.
	pairs []headerPair
}

// buildRowIndex indexes the target dataset over the first indexHeaders mapped
// header pairs. Empty values are not indexed.
func buildRowIndex(target *datasets.Dataset, pairs []headerPair, indexHeaders int) *rowIndex {
	if len(pairs) > indexHeaders {
		pairs = pairs[:indexHeaders]
	}

	idx := &rowIndex{
		entries: make(map[string][]int),
		pairs:   pairs,
	}

	for pos, row := range target.Rows {
		for _, pair := range pairs {
			value := indexValue(row[pair.target])
			if value == "" {
				continue
			}
			key := pair.target + ":" + value
			idx.entries[key] = append(idx.entries[key], pos)
		}
	}

	return idx
}

// candidates returns the union of target row positions whose indexed values
// collide with the source row's, in discovery order, deduplicated, excluding
// already-consumed positions.
func (idx *rowIndex) candidates(source datasets.Row, consumed map[int]bool) []int {
	var out []int
	seen := make(map[int]bool)

	for _, pair := range idx.pairs {
		value := indexValue(source[pair.source])
		if value == "" {
			continue
		}
		for _, pos := range idx.entries[pair.target+":"+value] {
			if consumed[pos] || seen[pos] {
				continue
			}
			seen[pos] = true
			out = append(out, pos)
		}
	}

	return out
}

// indexValue normalizes a cell value for index keys.
func indexValue(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
