package batch

import (
	"time"

	"github.com/tabwork/sheetrecon/pkg/compare"
)

// OverallStatus classifies the integrity of one source file across every
// comparison requested for it.
type OverallStatus string

const (
	// StatusExcellentMatch: every comparison succeeded and at least one was
	// an exact match.
	StatusExcellentMatch OverallStatus = "excellent_match"
	// StatusGoodMatch: every comparison succeeded, none exactly.
	StatusGoodMatch OverallStatus = "good_match"
	// StatusHasDifferences: some but not all comparisons succeeded.
	StatusHasDifferences OverallStatus = "has_differences"
	// StatusPoorMatch: no comparison succeeded.
	StatusPoorMatch OverallStatus = "poor_match"
	// StatusNoComparison: every request for the file failed to resolve.
	StatusNoComparison OverallStatus = "no_comparison"
)

// RequestResult pairs a request with its comparison result.
type RequestResult struct {
	Request Request         `json:"request" yaml:"request"`
	Result  *compare.Result `json:"result" yaml:"result"`
}

// FileSummary aggregates all comparison results whose requests name the same
// left-side source file.
type FileSummary struct {
	FileID        string            `json:"file_id" yaml:"file_id"`
	OverallStatus OverallStatus     `json:"overall_status" yaml:"overall_status"`
	Comparisons   []*compare.Result `json:"comparisons" yaml:"comparisons"`
}

// Report is the full outcome of a batch run.
type Report struct {
	RunID     string          `json:"run_id" yaml:"run_id"`
	Duration  time.Duration   `json:"duration" yaml:"duration"`
	Results   []RequestResult `json:"results" yaml:"results"`
	Summaries []FileSummary   `json:"summaries" yaml:"summaries"`
}

// summarize groups results by the left-side file of each request, in
// first-seen request order. Requests that failed to resolve contribute an
// empty group, which classifies as no_comparison.
func summarize(requests []Request, results []*compare.Result) []FileSummary {
	groups := make(map[string][]*compare.Result)
	var order []string

	for i, req := range requests {
		if _, seen := groups[req.File1ID]; !seen {
			order = append(order, req.File1ID)
			groups[req.File1ID] = nil
		}
		if results[i] != nil {
			groups[req.File1ID] = append(groups[req.File1ID], results[i])
		}
	}

	summaries := make([]FileSummary, 0, len(order))
	for _, fileID := range order {
		summaries = append(summaries, FileSummary{
			FileID:        fileID,
			OverallStatus: classifyGroup(groups[fileID]),
			Comparisons:   groups[fileID],
		})
	}
	return summaries
}

// classifyGroup derives the overall status from the comparisons of one file.
func classifyGroup(comparisons []*compare.Result) OverallStatus {
	if len(comparisons) == 0 {
		return StatusNoComparison
	}

	successes := 0
	exact := false
	for _, c := range comparisons {
		if c.IsSuccess() {
			successes++
			if c.SimilarityLevel == compare.LevelExactMatch {
				exact = true
			}
		}
	}

	switch {
	case successes == len(comparisons) && exact:
		return StatusExcellentMatch
	case successes == len(comparisons):
		return StatusGoodMatch
	case successes > 0:
		return StatusHasDifferences
	default:
		return StatusPoorMatch
	}
}
