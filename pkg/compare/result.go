package compare

import "fmt"

// Status is the coarse classification of a worksheet comparison, intended for
// UI and decision purposes.
type Status string

const (
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

// Level is the finer similarity classification used for reporting granularity.
type Level string

const (
	LevelExactMatch         Level = "exact_match"
	LevelNearIdentical      Level = "near_identical"
	LevelHighSimilarity     Level = "high_similarity"
	LevelModerateSimilarity Level = "moderate_similarity"
	LevelLowSimilarity      Level = "low_similarity"
	LevelDifferent          Level = "different"
)

// MatchReason records how a header match was established.
type MatchReason string

const (
	ReasonExact      MatchReason = "exact"
	ReasonNormalized MatchReason = "normalized"
	ReasonFuzzy      MatchReason = "fuzzy"
	ReasonNone       MatchReason = "none"
)

// HeaderMatch maps one source header to at most one target header.
type HeaderMatch struct {
	Source     string      `json:"source" yaml:"source"`
	Target     string      `json:"target,omitempty" yaml:"target,omitempty"`
	Confidence float64     `json:"confidence" yaml:"confidence"`
	Reason     MatchReason `json:"reason" yaml:"reason"`
}

// Matched reports whether the source header claimed a target header.
func (m HeaderMatch) Matched() bool {
	return m.Reason != ReasonNone
}

// UnmatchedRow marks a RowOutcome whose source row claimed no target row.
const UnmatchedRow = -1

// RowOutcome records the fate of one source row.
type RowOutcome struct {
	SourceRow  int      `json:"source_row" yaml:"source_row"`
	TargetRow  int      `json:"target_row" yaml:"target_row"` // UnmatchedRow when no match
	Similarity float64  `json:"similarity" yaml:"similarity"`
	FieldDiffs []string `json:"field_diffs,omitempty" yaml:"field_diffs,omitempty"`
}

// Matched reports whether the source row claimed a target row.
func (o RowOutcome) Matched() bool {
	return o.TargetRow != UnmatchedRow
}

// Result is the full outcome of comparing one worksheet pair.
type Result struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`

	TotalRows     int `json:"total_rows" yaml:"total_rows"`
	MatchingRows  int `json:"matching_rows" yaml:"matching_rows"`
	DifferentRows int `json:"different_rows" yaml:"different_rows"`

	HeadersMatch   bool          `json:"headers_match" yaml:"headers_match"`
	MissingHeaders []string      `json:"missing_headers,omitempty" yaml:"missing_headers,omitempty"`
	ExtraHeaders   []string      `json:"extra_headers,omitempty" yaml:"extra_headers,omitempty"`
	MatchedHeaders int           `json:"matched_headers" yaml:"matched_headers"`
	HeaderMatches  []HeaderMatch `json:"header_matches" yaml:"header_matches"`

	SimilarityPercentage float64 `json:"similarity_percentage" yaml:"similarity_percentage"`
	SimilarityLevel      Level   `json:"similarity_level" yaml:"similarity_level"`
	Status               Status  `json:"status" yaml:"status"`
	SummaryMessage       string  `json:"summary_message" yaml:"summary_message"`

	SampleDifferences []string `json:"sample_differences,omitempty" yaml:"sample_differences,omitempty"`
}

// IsSuccess reports whether the comparison cleared the success floor.
func (r *Result) IsSuccess() bool {
	return r.Status == StatusSuccess
}

// classifyLevel maps a similarity percentage onto a Level, first floor wins.
func classifyLevel(t Thresholds, similarity float64) Level {
	switch {
	case similarity >= t.ExactMatchFloor:
		return LevelExactMatch
	case similarity >= t.NearIdenticalFloor:
		return LevelNearIdentical
	case similarity >= t.HighSimilarityFloor:
		return LevelHighSimilarity
	case similarity >= t.ModerateSimilarityFloor:
		return LevelModerateSimilarity
	case similarity >= t.LowSimilarityFloor:
		return LevelLowSimilarity
	default:
		return LevelDifferent
	}
}

// classifyStatus maps a similarity percentage onto a Status.
func classifyStatus(t Thresholds, similarity float64) Status {
	switch {
	case similarity >= t.SuccessFloor:
		return StatusSuccess
	case similarity >= t.WarningFloor:
		return StatusWarning
	default:
		return StatusError
	}
}

// summaryMessage derives the human-readable summary purely from the
// classification triple; no additional computation is involved.
func summaryMessage(status Status, level Level, similarity float64) string {
	pct := similarity * 100
	switch level {
	case LevelExactMatch:
		return "Worksheets are identical"
	case LevelNearIdentical:
		return fmt.Sprintf("Worksheets are nearly identical (%.1f%% of rows matched)", pct)
	case LevelHighSimilarity:
		return fmt.Sprintf("Worksheets are highly similar (%.1f%% of rows matched)", pct)
	case LevelModerateSimilarity:
		return fmt.Sprintf("Worksheets are moderately similar (%.1f%% of rows matched)", pct)
	case LevelLowSimilarity:
		return fmt.Sprintf("Worksheets have significant differences (%.1f%% of rows matched)", pct)
	default:
		if status == StatusError {
			return fmt.Sprintf("Worksheets are different (%.1f%% of rows matched)", pct)
		}
		return fmt.Sprintf("Worksheets differ (%.1f%% of rows matched)", pct)
	}
}
