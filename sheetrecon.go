// Package sheetrecon reconciles tabular datasets that are expected to
// represent the same logical data but may have been re-exported with shuffled
// columns, reordered rows, and minor textual drift.
//
// The package-level functions are conveniences over the engine packages:
// pkg/compare for single worksheet pairs, pkg/batch for many pairs at once,
// and pkg/datasets for the normalized data model and store.
//
//	a := datasets.New("orders", []string{"ID", "Name"})
//	b := datasets.New("orders-reexport", []string{"Name", "ID"})
//	result := sheetrecon.Compare(ctx, a, b)
//	fmt.Println(result.SummaryMessage)
package sheetrecon

import (
	"context"

	"github.com/tabwork/sheetrecon/pkg/batch"
	"github.com/tabwork/sheetrecon/pkg/compare"
	"github.com/tabwork/sheetrecon/pkg/datasets"
)

// Compare reconciles one pair of worksheets with default options.
// It always returns a result; engine faults are downgraded to an
// Error-status result.
func Compare(ctx context.Context, source, target *datasets.Dataset, opts ...compare.Option) *compare.Result {
	return compare.New(opts...).Compare(ctx, source, target)
}

// Reconcile runs a batch of comparison requests against a dataset store and
// returns the aggregated report with per-file integrity summaries.
func Reconcile(ctx context.Context, store *datasets.Store, requests []batch.Request, opts ...batch.Option) *batch.Report {
	return batch.New(store, opts...).Run(ctx, requests)
}
