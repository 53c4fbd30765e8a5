package score

import (
	"math"

	"github.com/msartori/causalgo/pkg/data"
	"github.com/msartori/causalgo/pkg/graph"
)

// BIC is the Bayesian Information Criterion in its rescaled form
// LL − 0.5·k·θ·ln N, directly comparable with the log-likelihood. The
// penalty coefficient k defaults to 1; larger values favor sparser graphs.
type BIC struct {
	ll *LogLikelihood
	d  *data.Categorical
	k  float64
}

// NewBIC creates the criterion over the given dataset with the default
// penalty coefficient of 1.
func NewBIC(d *data.Categorical) *BIC {
	return &BIC{ll: NewLogLikelihood(d), d: d, k: 1}
}

// WithPenaltyCoeff sets the penalty coefficient and returns the receiver
// for chaining.
func (s *BIC) WithPenaltyCoeff(k float64) *BIC {
	s.k = k
	return s
}

// LocalScore computes the penalized log-likelihood contribution of vertex x
// with the given parent set.
func (s *BIC) LocalScore(x int, parents []int) float64 {
	n := float64(s.d.Len())
	theta := freeParameters(s.d, x, parents)
	return s.ll.LocalScore(x, parents) - 0.5*s.k*theta*math.Log(n)
}

// Score sums local scores over all vertices of g.
func (s *BIC) Score(g *graph.Directed) float64 { return Graph(s, g) }
