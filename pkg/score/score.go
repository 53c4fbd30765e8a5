// Package score implements scoring criteria for Bayesian-network structure
// learning over categorical data.
//
// # Overview
//
// A scoring criterion assigns a real number to a candidate graph given a
// dataset; structure learning searches for the graph maximizing it. All
// criteria in this package are decomposable: the graph score is the sum of
// per-vertex local scores that depend only on each vertex's parent set.
// Decomposability is what makes incremental delta-score evaluation cheap,
// so optimizers should type-assert for [Decomposable] and fall back to
// [Criterion] otherwise.
//
// Implemented criteria:
//
//   - [LogLikelihood]: the maximized multinomial log-likelihood. Always
//     improves with more parents; use only with structure penalties such as
//     a maximum in-degree.
//   - [BIC]: log-likelihood minus 0.5·k·θ·ln N, where θ counts free
//     parameters. The default criterion for structure discovery.
//   - [AIC]: log-likelihood minus k·θ.
package score

import (
	"github.com/msartori/causalgo/pkg/data"
	"github.com/msartori/causalgo/pkg/graph"
)

// Criterion scores a whole graph structure against a dataset.
type Criterion interface {
	Score(g *graph.Directed) float64
}

// Decomposable is a criterion whose graph score is the sum of independent
// per-vertex local scores, each depending only on that vertex's parent set.
// parents must be in ascending index order; implementations may use it as
// a cache key.
type Decomposable interface {
	Criterion
	LocalScore(x int, parents []int) float64
}

// MaxInDegreeHinter is optionally implemented by criteria that bound the
// useful parent-set size, letting the optimizer prune its search.
type MaxInDegreeHinter interface {
	MaxInDegreeHint() int
}

// Graph sums the local scores of a decomposable criterion over all
// vertices of g.
func Graph(s Decomposable, g *graph.Directed) float64 {
	total := 0.0
	for x := 0; x < g.Order(); x++ {
		total += s.LocalScore(x, g.Parents(x))
	}
	return total
}

// freeParameters returns θ, the number of free parameters of vertex x's
// conditional distribution given its parents: (|X|-1)·∏|Z|.
func freeParameters(d *data.Categorical, x int, parents []int) float64 {
	theta := float64(d.Cardinality(x) - 1)
	for _, z := range parents {
		theta *= float64(d.Cardinality(z))
	}
	return theta
}
