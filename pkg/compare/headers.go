package compare

import (
	"strings"

	"github.com/tabwork/sheetrecon/pkg/similarity"
)

// headerPair is one entry of the established header mapping, in source order.
type headerPair struct {
	source string
	target string
}

// matchHeaders maps each source header to the best unused target header.
// Assignment is greedy in source-header order: earlier headers have first
// claim on ambiguous candidates, and no target header is claimed twice.
// This is deliberately not a globally optimal bipartite assignment.
func matchHeaders(headersA, headersB []string, t Thresholds) ([]HeaderMatch, []headerPair) {
	matches := make([]HeaderMatch, 0, len(headersA))
	pairs := make([]headerPair, 0, len(headersA))
	used := make(map[int]bool, len(headersB))

	for _, source := range headersA {
		bestIdx := -1
		bestScore := 0.0
		bestReason := ReasonNone

		for i, target := range headersB {
			if used[i] {
				continue
			}

			score, reason := scoreHeaders(source, target, t)
			if score > bestScore {
				bestIdx = i
				bestScore = score
				bestReason = reason
			}
		}

		if bestIdx >= 0 && bestScore >= t.FuzzyHeaderFloor {
			used[bestIdx] = true
			matches = append(matches, HeaderMatch{
				Source:     source,
				Target:     headersB[bestIdx],
				Confidence: bestScore,
				Reason:     bestReason,
			})
			pairs = append(pairs, headerPair{source: source, target: headersB[bestIdx]})
			continue
		}

		matches = append(matches, HeaderMatch{
			Source:     source,
			Confidence: bestScore,
			Reason:     ReasonNone,
		})
	}

	return matches, pairs
}

// scoreHeaders rates a single source/target header pair.
func scoreHeaders(source, target string, t Thresholds) (float64, MatchReason) {
	if strings.EqualFold(source, target) {
		return 1.0, ReasonExact
	}

	ns := normalizeHeader(source)
	nt := normalizeHeader(target)
	if ns == "" || nt == "" {
		// Punctuation-only headers normalize away entirely and carry no
		// signal to match on.
		return 0.0, ReasonNone
	}
	if ns == nt {
		return t.NormalizedHeaderScore, ReasonNormalized
	}

	score := similarity.Fields(ns, nt)
	if score >= t.FuzzyHeaderFloor {
		return score, ReasonFuzzy
	}

	return score, ReasonNone
}

// normalizeHeader canonicalizes a header name for comparison: lowercase,
// spaces/hyphens/periods become underscores, parentheses are stripped, and
// leading/trailing underscores are trimmed.
func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch r {
		case ' ', '-', '.':
			b.WriteByte('_')
		case '(', ')':
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "_")
}

// headersCompatible applies the structural gate: matched headers must cover
// at least the gate fraction of the smaller header set.
func headersCompatible(matched, lenA, lenB int, gate float64) bool {
	minLen := lenA
	if lenB < minLen {
		minLen = lenB
	}
	return float64(matched) >= gate*float64(minLen)
}
