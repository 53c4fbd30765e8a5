package discovery

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"slices"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/msartori/causalgo/pkg/data"
	"github.com/msartori/causalgo/pkg/errors"
	"github.com/msartori/causalgo/pkg/graph"
	"github.com/msartori/causalgo/pkg/prior"
	"github.com/msartori/causalgo/pkg/score"
)

// improvementTol is the minimum delta score treated as a real improvement.
// Near score plateaus, floating-point noise can make two operations that
// are analytically tied differ in the last few bits; accepting such deltas
// makes convergence depend on summation order. The magnitude is a
// heuristic: any value comfortably above f64 rounding error and below
// meaningful score differences works, and changing it may change which of
// several equally scored local optima is returned.
const improvementTol = 1e-10

// PriorKnowledge is the constraint contract consumed by the optimizer.
// *prior.ForbiddenRequired implements it.
type PriorKnowledge interface {
	Labels() []string
	HasForbidden(x, y int) bool
	HasRequired(x, y int) bool
	Required() []prior.Edge
}

// Progress describes one accepted operation, for observability only.
type Progress struct {
	Iteration int
	Kind      string // "Add", "Del" or "Rev"
	X, Y      string // operation endpoint labels
	Delta     float64
	Score     float64 // running total after applying the operation
}

// HillClimbing is a greedy local-search structure learner: starting from an
// initial DAG it repeatedly applies the single-edge operation (add, delete
// or reverse) with the best delta score until no operation improves the
// score beyond [improvementTol], then returns the local optimum.
//
// The zero value is not usable - use [NewHillClimbing], then chain With*
// options:
//
//	g, err := discovery.NewHillClimbing(score.NewBIC(d)).
//		WithShuffle(42).
//		WithWorkers(runtime.NumCPU()).
//		Call(d, k)
type HillClimbing struct {
	s           score.Criterion
	initial     *graph.Directed
	maxInDegree int
	maxIter     int
	seed        int64
	shuffled    bool
	workers     int
	logger      *log.Logger
	progress    func(Progress)
}

// NewHillClimbing creates an optimizer for the given scoring criterion.
// If the criterion hints a maximum useful in-degree, it becomes the default
// in-degree bound.
func NewHillClimbing(s score.Criterion) *HillClimbing {
	maxInDegree := math.MaxInt
	if h, ok := s.(score.MaxInDegreeHinter); ok {
		maxInDegree = h.MaxInDegreeHint()
	}
	return &HillClimbing{
		s:           s,
		maxInDegree: maxInDegree,
		maxIter:     math.MaxInt,
		workers:     1,
		logger:      log.New(io.Discard),
	}
}

// WithInitialGraph starts the search from g instead of the empty graph.
// The graph is cloned; the argument is never mutated.
func (hc *HillClimbing) WithInitialGraph(g *graph.Directed) *HillClimbing {
	hc.initial = g
	return hc
}

// WithMaxInDegree bounds the number of parents any vertex may acquire.
func (hc *HillClimbing) WithMaxInDegree(n int) *HillClimbing {
	hc.maxInDegree = n
	return hc
}

// WithMaxIterations caps the number of accepted operations. Reaching the
// cap is not an error: the current graph is returned as-is.
func (hc *HillClimbing) WithMaxIterations(n int) *HillClimbing {
	hc.maxIter = n
	return hc
}

// WithShuffle enables seeded shuffling of the candidate enumeration order.
// Shuffling only affects tie-breaking among operations with equal delta
// scores; the same seed always reproduces the same result.
func (hc *HillClimbing) WithShuffle(seed int64) *HillClimbing {
	hc.seed = seed
	hc.shuffled = true
	return hc
}

// WithWorkers sets the number of goroutines used by the candidate scan.
// Values below 2 keep the scan sequential. The result is identical to the
// sequential scan up to [improvementTol] regardless of worker count.
func (hc *HillClimbing) WithWorkers(n int) *HillClimbing {
	hc.workers = n
	return hc
}

// WithLogger routes diagnostic logging (applied operations, rejected
// candidates, convergence) to the given logger. By default logs are
// discarded.
func (hc *HillClimbing) WithLogger(l *log.Logger) *HillClimbing {
	hc.logger = l
	return hc
}

// WithProgress registers a callback invoked after every accepted operation.
// The callback runs on the optimizer's goroutine and should return quickly.
func (hc *HillClimbing) WithProgress(fn func(Progress)) *HillClimbing {
	hc.progress = fn
	return hc
}

// run is the per-call mutable state of one optimization.
type run struct {
	g           *graph.Directed
	space       *opSpace
	cache       *scoreCache
	eval        evaluator
	inDegree    []int
	maxInDegree int
	workers     int
	logger      *log.Logger
}

// Call learns a structure from the dataset labels and prior knowledge and
// returns the local optimum. The returned graph is acyclic, contains every
// required edge and no forbidden edge.
//
// Precondition violations (label mismatches, a forbidden starting edge, an
// unsatisfiable required-edge set) are reported as errors before any search
// work happens. Once the search is running the computation cannot fail:
// it either converges or exhausts the iteration budget.
func (hc *HillClimbing) Call(d data.Dataset, k PriorKnowledge) (*graph.Directed, error) {
	r, err := hc.init(d, k)
	if err != nil {
		return nil, err
	}

	total, entries := r.eval.initialScore(r.g)
	r.cache.merge(entries)
	hc.logger.Debug("initialized", "score", total, "candidates",
		r.space.add.len()+r.space.del.len()+r.space.rev.len())

	for i := 0; i < hc.maxIter; i++ {
		best := r.searchStep()
		if !best.ok {
			hc.logger.Debug("converged", "iterations", i, "score", total)
			return r.g, nil
		}

		r.apply(best.op)
		r.space.update(best.op)
		total += best.delta

		hc.logger.Debug("applied operation",
			"op", best.op.kind.String(),
			"x", r.g.Label(best.op.x),
			"y", r.g.Label(best.op.y),
			"delta", best.delta,
			"score", total)
		if hc.progress != nil {
			hc.progress(Progress{
				Iteration: i + 1,
				Kind:      best.op.kind.String(),
				X:         r.g.Label(best.op.x),
				Y:         r.g.Label(best.op.y),
				Delta:     best.delta,
				Score:     total,
			})
		}
	}

	hc.logger.Debug("iteration budget exhausted", "iterations", hc.maxIter, "score", total)
	return r.g, nil
}

// init validates inputs, builds the starting graph (augmented with required
// edges) and the three edge-space partitions.
func (hc *HillClimbing) init(d data.Dataset, k PriorKnowledge) (*run, error) {
	labels := sortedLabels(d.Labels())

	var g *graph.Directed
	if hc.initial != nil {
		g = hc.initial.Clone()
	} else {
		var err error
		if g, err = graph.Empty(labels); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "invalid dataset labels")
		}
	}

	if !slices.Equal(g.Labels(), labels) {
		return nil, errors.New(errors.ErrCodeLabelMismatch,
			"graph labels %v do not match dataset labels %v", g.Labels(), labels)
	}
	if kl := sortedLabels(k.Labels()); !slices.Equal(kl, labels) {
		return nil, errors.New(errors.ErrCodeLabelMismatch,
			"prior knowledge labels %v do not match dataset labels %v", kl, labels)
	}

	for _, e := range g.Edges() {
		if k.HasForbidden(e.From, e.To) {
			return nil, errors.New(errors.ErrCodeForbiddenEdge,
				"starting graph contains forbidden edge %s->%s", g.Label(e.From), g.Label(e.To))
		}
	}
	if !g.IsAcyclic() {
		return nil, errors.New(errors.ErrCodeInvalidGraph, "starting graph must be acyclic")
	}
	for _, e := range k.Required() {
		if !g.HasEdge(e.From, e.To) {
			if err := g.AddEdge(e.From, e.To); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err,
					"cannot insert required edge %s->%s", g.Label(e.From), g.Label(e.To))
			}
		}
	}
	if !g.IsAcyclic() {
		return nil, errors.New(errors.ErrCodeRequiredCycle,
			"required edges cannot be satisfied without creating a cycle")
	}

	// Enumeration order fixes tie-breaking; an optional seed shuffles it.
	verts := make([]int, g.Order())
	for i := range verts {
		verts[i] = i
	}
	if hc.shuffled {
		rng := rand.New(rand.NewSource(hc.seed))
		rng.Shuffle(len(verts), func(i, j int) { verts[i], verts[j] = verts[j], verts[i] })
		hc.logger.Debug("shuffled candidate order", "seed", hc.seed, "order", fmt.Sprint(verts))
	}

	space := &opSpace{add: newPairSet(), del: newPairSet(), rev: newPairSet()}
	for _, x := range verts {
		for _, y := range verts {
			if x == y {
				continue
			}
			switch {
			case !g.HasEdge(x, y):
				if !k.HasForbidden(x, y) {
					space.add.insert(pair{x: x, y: y})
				}
			default:
				if !k.HasRequired(x, y) {
					space.del.insert(pair{x: x, y: y})
					if !k.HasForbidden(y, x) {
						space.rev.insert(pair{x: x, y: y})
					}
				}
			}
		}
	}

	inDegree := make([]int, g.Order())
	for y := range inDegree {
		inDegree[y] = g.InDegree(y)
	}

	cache := newScoreCache()
	var eval evaluator
	if ds, ok := hc.s.(score.Decomposable); ok {
		eval = &decomposableEvaluator{s: ds, cache: cache}
	} else {
		eval = &wholeGraphEvaluator{s: hc.s, cache: cache}
	}

	return &run{
		g:           g,
		space:       space,
		cache:       cache,
		eval:        eval,
		inDegree:    inDegree,
		maxInDegree: hc.maxInDegree,
		workers:     hc.workers,
		logger:      hc.logger,
	}, nil
}

// apply mutates the graph with the winning operation, asserting its
// preconditions. A violated precondition means the edge space and the graph
// disagree, which is a bookkeeping defect, not a recoverable error.
func (r *run) apply(op operation) {
	switch op.kind {
	case opAdd:
		if r.g.HasEdge(op.x, op.y) {
			panic(fmt.Sprintf("discovery: applying Add(%d, %d) but edge exists", op.x, op.y))
		}
		mustEdge(r.g.AddEdge(op.x, op.y))
		r.inDegree[op.y]++
	case opDel:
		if !r.g.HasEdge(op.x, op.y) {
			panic(fmt.Sprintf("discovery: applying Del(%d, %d) but edge is missing", op.x, op.y))
		}
		mustEdge(r.g.DelEdge(op.x, op.y))
		r.inDegree[op.y]--
	case opRev:
		if !r.g.HasEdge(op.x, op.y) || r.g.HasEdge(op.y, op.x) {
			panic(fmt.Sprintf("discovery: applying Rev(%d, %d) with inconsistent edges", op.x, op.y))
		}
		mustEdge(r.g.DelEdge(op.x, op.y))
		r.inDegree[op.y]--
		mustEdge(r.g.AddEdge(op.y, op.x))
		r.inDegree[op.x]++
	default:
		panic(fmt.Sprintf("discovery: unknown operation kind %d", int(op.kind)))
	}
}

func sortedLabels(labels []string) []string {
	out := slices.Clone(labels)
	sort.Strings(out)
	return out
}
