// Package similarity scores the closeness of two scalar text values on a
// [0,1] scale. It is the leaf scoring primitive used for both header-name
// matching and row-field comparison.
//
// Scoring tiers, checked in order:
//
//	both values empty after trimming      -> 1.0
//	exactly one value empty               -> 0.0
//	case-insensitive exact match          -> 1.0
//	equal after whitespace normalization  -> 0.95
//	otherwise                             -> 1 - editDistance/maxLen
package similarity

import (
	"strings"
	"unicode"

	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/text/unicode/norm"
)

// Score returned for values that are equal only after whitespace
// normalization, slightly below a clean exact match.
const normalizedMatchScore = 0.95

// Fields returns the similarity of two field values in [0,1].
// The function is pure and symmetric: Fields(a, b) == Fields(b, a).
func Fields(a, b string) float64 {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)

	if a == "" && b == "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	if strings.EqualFold(a, b) {
		return 1.0
	}

	na := Normalize(a)
	nb := Normalize(b)
	if na == nb {
		return normalizedMatchScore
	}

	return ratio(na, nb)
}

// Normalize lowercases a value, strips tabs, newlines and carriage returns,
// and collapses internal whitespace runs to a single space. Text is NFC
// composed first so visually identical values compare equal.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

// ratio converts an edit distance into a similarity in [0,1] by dividing by
// the longer input's rune length.
func ratio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)

	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 1.0
	}

	dist := levenshtein.DistanceForStrings(ra, rb, levenshtein.DefaultOptions)
	return 1.0 - float64(dist)/float64(maxLen)
}

// Distance returns the Levenshtein edit distance between two strings, with
// insert, delete and substitute all costing 1.
func Distance(a, b string) int {
	return levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
}
