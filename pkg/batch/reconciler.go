// Package batch orchestrates the worksheet comparison engine across many
// file/worksheet pairs. Requests are resolved against a read-only dataset
// store, compared concurrently on a bounded worker pool, and grouped into
// per-source-file integrity summaries.
package batch

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tabwork/sheetrecon/pkg/compare"
	"github.com/tabwork/sheetrecon/pkg/datasets"
	"github.com/tabwork/sheetrecon/pkg/logging"
)

// Request identifies one worksheet pair to compare.
type Request struct {
	File1ID    string `json:"file1_id" yaml:"file1_id"`
	Worksheet1 string `json:"file1_worksheet" yaml:"file1_worksheet"`
	File2ID    string `json:"file2_id" yaml:"file2_id"`
	Worksheet2 string `json:"file2_worksheet" yaml:"file2_worksheet"`

	// MatchThreshold overrides the default row match threshold when > 0.
	MatchThreshold float64 `json:"match_threshold,omitempty" yaml:"match_threshold,omitempty"`
}

// Reconciler runs comparison requests against a dataset store.
type Reconciler interface {
	// Run executes every resolvable request and returns the aggregated
	// report. Per-request failures are isolated: a failing or unresolvable
	// request never aborts the batch, so a batch of N requests yields at
	// most N results and never an error for individual requests.
	Run(ctx context.Context, requests []Request) *Report
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	store   *datasets.Store
	workers int
	opts    []compare.Option
}

// Option configures a Reconciler.
type Option func(*reconciler)

// WithWorkers bounds the comparison worker pool.
func WithWorkers(n int) Option {
	return func(r *reconciler) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithCompareOptions forwards options to every comparison in the batch.
func WithCompareOptions(opts ...compare.Option) Option {
	return func(r *reconciler) {
		r.opts = append(r.opts, opts...)
	}
}

// New creates a Reconciler resolving against the given store.
func New(store *datasets.Store, opts ...Option) Reconciler {
	r := &reconciler{
		store:   store,
		workers: 4,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the batch.
func (r *reconciler) Run(ctx context.Context, requests []Request) *Report {
	started := time.Now()
	logger := logging.FromContext(ctx)

	logger.Info().
		Int("requests", len(requests)).
		Int("workers", r.workers).
		Msg("Running batch reconciliation")

	// Results are collected by request position so output ordering is
	// deterministic regardless of scheduling.
	results := make([]*compare.Result, len(requests))

	var wg sync.WaitGroup
	sem := make(chan struct{}, r.workers)

	for i, req := range requests {
		wg.Add(1)
		go func(pos int, req Request) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[pos] = r.run(ctx, req)
		}(i, req)
	}
	wg.Wait()

	report := &Report{
		RunID:    uuid.NewString(),
		Duration: time.Since(started),
	}
	for i, res := range results {
		if res == nil {
			continue // request failed to resolve
		}
		report.Results = append(report.Results, RequestResult{
			Request: requests[i],
			Result:  res,
		})
	}
	report.Summaries = summarize(requests, results)

	logger.Info().
		Str("run_id", report.RunID).
		Int("results", len(report.Results)).
		Dur("duration", report.Duration).
		Msg("Batch reconciliation complete")

	return report
}

// run resolves and compares one request. A nil result means the request was
// skipped because a dataset or worksheet could not be resolved.
func (r *reconciler) run(ctx context.Context, req Request) *compare.Result {
	ctx = logging.WithRequest(ctx, req.File1ID, req.Worksheet1, req.File2ID, req.Worksheet2)
	logger := logging.FromContext(ctx)

	source, err := r.store.Get(req.File1ID, req.Worksheet1)
	if err != nil {
		logger.Warn().Err(err).Msg("Skipping request: source not resolved")
		return nil
	}
	target, err := r.store.Get(req.File2ID, req.Worksheet2)
	if err != nil {
		logger.Warn().Err(err).Msg("Skipping request: target not resolved")
		return nil
	}

	opts := r.opts
	if req.MatchThreshold > 0 {
		opts = append(opts[:len(opts):len(opts)], compare.WithMatchThreshold(req.MatchThreshold))
	}

	result := compare.New(opts...).Compare(ctx, source, target)

	logger.Debug().
		Str("status", string(result.Status)).
		Float64("similarity", result.SimilarityPercentage).
		Msg("Comparison finished")

	return result
}
