package compare

// Thresholds collects every classification constant the comparator uses, so
// the decision tables are auditable and testable independently of the
// matching logic. The zero value is not useful; use DefaultThresholds.
type Thresholds struct {
	// MatchThreshold is the minimum averaged row similarity for a target row
	// to be claimed by a source row.
	MatchThreshold float64

	// FuzzyHeaderFloor is the minimum similarity for a fuzzy header match.
	// Anything below leaves the source header unmatched.
	FuzzyHeaderFloor float64

	// NormalizedHeaderScore is the confidence assigned to headers that are
	// equal only after name normalization.
	NormalizedHeaderScore float64

	// HeaderGate is the fraction of min(|headersA|, |headersB|) that must be
	// matched for the worksheets to be considered structurally compatible.
	HeaderGate float64

	// Level floors, checked in descending order; the first one at or below
	// the similarity percentage wins.
	ExactMatchFloor         float64
	NearIdenticalFloor      float64
	HighSimilarityFloor     float64
	ModerateSimilarityFloor float64
	LowSimilarityFloor      float64

	// Status floors.
	SuccessFloor float64
	WarningFloor float64
}

// DefaultThresholds returns the standard classification table.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MatchThreshold:          0.90,
		FuzzyHeaderFloor:        0.85,
		NormalizedHeaderScore:   0.95,
		HeaderGate:              0.80,
		ExactMatchFloor:         1.00,
		NearIdenticalFloor:      0.98,
		HighSimilarityFloor:     0.90,
		ModerateSimilarityFloor: 0.80,
		LowSimilarityFloor:      0.50,
		SuccessFloor:            0.90,
		WarningFloor:            0.50,
	}
}

// Options configures a Comparator.
type Options struct {
	Thresholds Thresholds

	// CandidateCap bounds how many candidate target rows are scored per
	// source row. A performance/quality trade-off; the default preserves
	// compatible behavior.
	CandidateCap int

	// IndexHeaders is how many mapped headers the row index is built over.
	IndexHeaders int

	// MaxFieldDiffs caps the per-row field difference sample.
	MaxFieldDiffs int

	// MaxDiffSamples caps the row-level difference samples on a result.
	MaxDiffSamples int
}

// DefaultOptions returns the default comparator configuration.
func DefaultOptions() *Options {
	return &Options{
		Thresholds:     DefaultThresholds(),
		CandidateCap:   50,
		IndexHeaders:   3,
		MaxFieldDiffs:  3,
		MaxDiffSamples: 3,
	}
}

// Option configures a Comparator.
type Option func(*Options)

// WithMatchThreshold sets the minimum row similarity for a match.
func WithMatchThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold > 0 {
			o.Thresholds.MatchThreshold = threshold
		}
	}
}

// WithThresholds replaces the whole classification table.
func WithThresholds(t Thresholds) Option {
	return func(o *Options) {
		o.Thresholds = t
	}
}

// WithCandidateCap sets the per-row candidate scoring bound.
func WithCandidateCap(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.CandidateCap = n
		}
	}
}

// WithIndexHeaders sets how many mapped headers the row index covers.
func WithIndexHeaders(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.IndexHeaders = n
		}
	}
}
