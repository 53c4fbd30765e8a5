// Package discovery implements score-based structure learning for
// Bayesian networks via greedy hill climbing.
//
// # Overview
//
// The optimizer walks the space of directed acyclic graphs one edge
// operation at a time. Each iteration scans every candidate addition,
// deletion and reversal, evaluates the score change of the valid ones,
// and applies the single best improving operation. The search stops at
// the first iteration with no improvement, returning a local optimum.
//
// Candidate bookkeeping is incremental: the legal operations are held in
// three insertion-ordered partitions that are patched after each applied
// operation instead of being rebuilt. Score evaluations are memoized per
// run; for decomposable criteria the memo is keyed by vertex and parent
// set, so an operation costs at most four local evaluations.
//
// # Determinism
//
// For a fixed dataset, prior knowledge, seed and options the result is
// reproducible: candidates are scanned in a fixed enumeration order and
// ties are broken by that order. The parallel scan partitions candidates
// into contiguous chunks and folds chunk results in order, so the worker
// count does not change the outcome.
//
// # Basic Usage
//
//	d, _ := data.FromCSV(f)
//	k, _ := prior.NewForbiddenRequired(d.Labels(), nil, nil)
//	g, err := discovery.NewHillClimbing(score.NewBIC(d)).
//		WithShuffle(42).
//		Call(d, k)
package discovery
