package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchHeadersExactPermutation(t *testing.T) {
	matches, pairs := matchHeaders(
		[]string{"ID", "Name"},
		[]string{"Name", "ID"},
		DefaultThresholds(),
	)

	require.Len(t, matches, 2)
	require.Len(t, pairs, 2)

	assert.Equal(t, "ID", matches[0].Source)
	assert.Equal(t, "ID", matches[0].Target)
	assert.Equal(t, ReasonExact, matches[0].Reason)
	assert.Equal(t, 1.0, matches[0].Confidence)

	assert.Equal(t, "Name", matches[1].Source)
	assert.Equal(t, "Name", matches[1].Target)
	assert.Equal(t, ReasonExact, matches[1].Reason)
}

func TestMatchHeadersNormalized(t *testing.T) {
	tests := []struct {
		source string
		target string
	}{
		{"First Name", "first_name"},
		{"Qty.", "qty"},
		{"unit-price", "Unit Price"},
		{"Total (USD)", "total_usd"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			matches, pairs := matchHeaders([]string{tt.source}, []string{tt.target}, DefaultThresholds())
			require.Len(t, pairs, 1)
			assert.Equal(t, ReasonNormalized, matches[0].Reason)
			assert.Equal(t, 0.95, matches[0].Confidence)
		})
	}
}

func TestMatchHeadersFuzzy(t *testing.T) {
	matches, pairs := matchHeaders([]string{"Customer Name"}, []string{"Custmer Name"}, DefaultThresholds())

	require.Len(t, pairs, 1)
	assert.Equal(t, ReasonFuzzy, matches[0].Reason)
	assert.GreaterOrEqual(t, matches[0].Confidence, 0.85)
	assert.Less(t, matches[0].Confidence, 0.95)
}

func TestMatchHeadersNone(t *testing.T) {
	matches, pairs := matchHeaders([]string{"Quantity"}, []string{"Region"}, DefaultThresholds())

	assert.Empty(t, pairs)
	require.Len(t, matches, 1)
	assert.Equal(t, ReasonNone, matches[0].Reason)
	assert.Empty(t, matches[0].Target)
	assert.Less(t, matches[0].Confidence, 0.85)
}

func TestMatchHeadersInjective(t *testing.T) {
	// Two source headers compete for the same target; the earlier source
	// header wins and the later one must not claim the same target.
	matches, pairs := matchHeaders(
		[]string{"Amount", "Amount 2"},
		[]string{"Amount"},
		DefaultThresholds(),
	)

	require.Len(t, matches, 2)
	require.Len(t, pairs, 1)
	assert.Equal(t, "Amount", matches[0].Target)
	assert.Equal(t, ReasonExact, matches[0].Reason)
	assert.Equal(t, ReasonNone, matches[1].Reason)
}

func TestMatchHeadersPrefersBestCandidate(t *testing.T) {
	// An exact candidate later in B must beat a normalized candidate that
	// appears earlier.
	matches, _ := matchHeaders(
		[]string{"Order ID"},
		[]string{"order_id", "Order ID"},
		DefaultThresholds(),
	)

	assert.Equal(t, "Order ID", matches[0].Target)
	assert.Equal(t, ReasonExact, matches[0].Reason)
}

func TestMatchHeadersPunctuationOnly(t *testing.T) {
	// Headers that normalize away entirely must not match each other.
	matches, pairs := matchHeaders([]string{"("}, []string{")"}, DefaultThresholds())

	assert.Empty(t, pairs)
	require.Len(t, matches, 1)
	assert.Equal(t, ReasonNone, matches[0].Reason)
	assert.Equal(t, 0.0, matches[0].Confidence)
}

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"First Name", "first_name"},
		{"unit-price", "unit_price"},
		{"Qty.", "qty"},
		{"(internal)", "internal"},
		{"__padded__", "padded"},
		{"Total (USD)", "total_usd"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeHeader(tt.in), "normalizeHeader(%q)", tt.in)
	}
}

func TestHeadersCompatible(t *testing.T) {
	gate := DefaultThresholds().HeaderGate

	assert.True(t, headersCompatible(4, 5, 5, gate))
	assert.False(t, headersCompatible(3, 5, 5, gate))
	// Gate applies to the smaller header set.
	assert.True(t, headersCompatible(2, 2, 10, gate))
	assert.True(t, headersCompatible(0, 0, 3, gate))
}
