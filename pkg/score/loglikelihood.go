package score

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/msartori/causalgo/pkg/data"
	"github.com/msartori/causalgo/pkg/graph"
)

// LogLikelihood is the maximized multinomial log-likelihood criterion.
// For each parent configuration j the contribution is Σᵢ nᵢⱼ·ln(nᵢⱼ/nⱼ),
// with 0·ln 0 taken as 0. The score is always non-positive and never
// decreases when parents are added, so it is unsuitable for structure
// discovery without an in-degree bound or an explicit penalty ([BIC], [AIC]).
type LogLikelihood struct {
	d *data.Categorical
}

// NewLogLikelihood creates the criterion over the given dataset.
func NewLogLikelihood(d *data.Categorical) *LogLikelihood {
	return &LogLikelihood{d: d}
}

// LocalScore computes the log-likelihood contribution of vertex x with the
// given parent set.
func (s *LogLikelihood) LocalScore(x int, parents []int) float64 {
	counts := s.d.ConditionalCounts(x, parents)

	terms := make([]float64, 0, len(counts)*s.d.Cardinality(x))
	for _, row := range counts {
		nj := 0
		for _, n := range row {
			nj += n
		}
		if nj == 0 {
			continue
		}
		for _, n := range row {
			if n == 0 {
				continue
			}
			nij := float64(n)
			terms = append(terms, nij*math.Log(nij/float64(nj)))
		}
	}
	return floats.Sum(terms)
}

// Score sums local scores over all vertices of g.
func (s *LogLikelihood) Score(g *graph.Directed) float64 { return Graph(s, g) }
