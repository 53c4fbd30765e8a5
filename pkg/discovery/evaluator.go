package discovery

import (
	"slices"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/msartori/causalgo/pkg/graph"
	"github.com/msartori/causalgo/pkg/score"
)

// evaluator computes a candidate operation's delta score against the
// current graph. Implementations read the shared cache but never write it:
// newly computed scores are returned as proposed entries, so eval is safe
// to call from concurrent workers against an immutable cache snapshot.
type evaluator interface {
	// initialScore computes the score of the starting graph and the cache
	// entries seeding the memoization.
	initialScore(g *graph.Directed) (float64, []cacheEntry)
	// eval computes op's delta score plus any newly computed cache entries.
	eval(g *graph.Directed, op operation) (float64, []cacheEntry)
}

// decomposableEvaluator scores operations through per-vertex local scores.
// Only the endpoints of an operation change parent sets, so a delta needs
// at most four local evaluations (two for Add/Del, four for Reverse).
type decomposableEvaluator struct {
	s     score.Decomposable
	cache *scoreCache
}

func (e *decomposableEvaluator) local(x int, parents []int) (float64, []cacheEntry) {
	key := localKey(x, parents)
	if s, ok := e.cache.lookup(key); ok {
		return s, nil
	}
	s := e.s.LocalScore(x, parents)
	return s, []cacheEntry{{key: key, score: s}}
}

func (e *decomposableEvaluator) initialScore(g *graph.Directed) (float64, []cacheEntry) {
	scores := make([]float64, g.Order())
	entries := make([]cacheEntry, 0, g.Order())
	for x := 0; x < g.Order(); x++ {
		s, fresh := e.local(x, g.Parents(x))
		scores[x] = s
		entries = append(entries, fresh...)
	}
	return floats.Sum(scores), entries
}

func (e *decomposableEvaluator) eval(g *graph.Directed, op operation) (float64, []cacheEntry) {
	paY := g.Parents(op.y)
	sY, entries := e.local(op.y, paY)

	switch op.kind {
	case opAdd:
		sStar, fresh := e.local(op.y, insertSorted(paY, op.x))
		return sStar - sY, append(entries, fresh...)
	case opDel:
		sStar, fresh := e.local(op.y, removeSorted(paY, op.x))
		return sStar - sY, append(entries, fresh...)
	case opRev:
		paX := g.Parents(op.x)
		sX, fresh := e.local(op.x, paX)
		entries = append(entries, fresh...)

		// Reversing changes both endpoints: x gains y as a parent and
		// y loses x.
		sXStar, fresh := e.local(op.x, insertSorted(paX, op.y))
		entries = append(entries, fresh...)
		sYStar, fresh := e.local(op.y, removeSorted(paY, op.x))
		entries = append(entries, fresh...)

		return (sXStar - sX) + (sYStar - sY), entries
	}
	panic("discovery: unknown operation kind")
}

// wholeGraphEvaluator scores operations by evaluating the full modified
// structure. It exists for non-decomposable criteria; the only structural
// difference from decomposableEvaluator is the cache-key shape.
type wholeGraphEvaluator struct {
	s     score.Criterion
	cache *scoreCache
}

func (e *wholeGraphEvaluator) whole(g *graph.Directed) (float64, []cacheEntry) {
	key := graphKey(g)
	if s, ok := e.cache.lookup(key); ok {
		return s, nil
	}
	s := e.s.Score(g)
	return s, []cacheEntry{{key: key, score: s}}
}

func (e *wholeGraphEvaluator) initialScore(g *graph.Directed) (float64, []cacheEntry) {
	return e.whole(g)
}

func (e *wholeGraphEvaluator) eval(g *graph.Directed, op operation) (float64, []cacheEntry) {
	sG, entries := e.whole(g)

	h := g.Clone()
	switch op.kind {
	case opAdd:
		mustEdge(h.AddEdge(op.x, op.y))
	case opDel:
		mustEdge(h.DelEdge(op.x, op.y))
	case opRev:
		mustEdge(h.DelEdge(op.x, op.y))
		mustEdge(h.AddEdge(op.y, op.x))
	default:
		panic("discovery: unknown operation kind")
	}

	sStar, fresh := e.whole(h)
	return sStar - sG, append(entries, fresh...)
}

// mustEdge converts an impossible edge-mutation failure into a panic: the
// optimizer only evaluates pairs drawn from the edge space, so a failure
// here is a bookkeeping defect.
func mustEdge(err error) {
	if err != nil {
		panic("discovery: edge mutation failed: " + err.Error())
	}
}

// insertSorted returns a copy of parents with v inserted at its sorted
// position, keeping cache keys canonical.
func insertSorted(parents []int, v int) []int {
	i := sort.SearchInts(parents, v)
	out := make([]int, 0, len(parents)+1)
	out = append(out, parents[:i]...)
	out = append(out, v)
	return append(out, parents[i:]...)
}

// removeSorted returns a copy of parents with v removed.
func removeSorted(parents []int, v int) []int {
	i := sort.SearchInts(parents, v)
	if i >= len(parents) || parents[i] != v {
		panic("discovery: parent set does not contain vertex to remove")
	}
	return slices.Delete(slices.Clone(parents), i, i+1)
}
