package score

import (
	"github.com/msartori/causalgo/pkg/data"
	"github.com/msartori/causalgo/pkg/graph"
)

// AIC is the Akaike Information Criterion in its rescaled form LL − k·θ.
// Compared with [BIC] its penalty does not grow with the sample size, so it
// tends to select denser graphs.
type AIC struct {
	ll *LogLikelihood
	d  *data.Categorical
	k  float64
}

// NewAIC creates the criterion over the given dataset with the default
// penalty coefficient of 1.
func NewAIC(d *data.Categorical) *AIC {
	return &AIC{ll: NewLogLikelihood(d), d: d, k: 1}
}

// WithPenaltyCoeff sets the penalty coefficient and returns the receiver
// for chaining.
func (s *AIC) WithPenaltyCoeff(k float64) *AIC {
	s.k = k
	return s
}

// LocalScore computes the penalized log-likelihood contribution of vertex x
// with the given parent set.
func (s *AIC) LocalScore(x int, parents []int) float64 {
	return s.ll.LocalScore(x, parents) - s.k*freeParameters(s.d, x, parents)
}

// Score sums local scores over all vertices of g.
func (s *AIC) Score(g *graph.Directed) float64 { return Graph(s, g) }
