package discovery

import "sync"

// candidate couples an operation with its delta score. The zero value means
// "no improving operation found".
type candidate struct {
	op    operation
	delta float64
	ok    bool
}

// scanResult is the outcome of scanning a slice of candidate pairs: the
// best improving candidate seen, plus every cache entry discovered along
// the way. Results combine associatively, which is what allows the chunked
// parallel scan to reduce without locks.
type scanResult struct {
	best    candidate
	entries []cacheEntry
}

// improves reports whether delta is a strict improvement over the current
// best, beyond the floating-point tolerance. The tolerance guards against
// oscillating between operations whose scores differ only by rounding.
func (c candidate) improves(delta float64) bool {
	if !c.ok {
		return delta > improvementTol
	}
	return delta > c.delta+improvementTol
}

func (r *scanResult) fold(other scanResult) {
	if other.best.ok && r.best.improves(other.best.delta) {
		r.best = other.best
	}
	r.entries = append(r.entries, other.entries...)
}

// isValid reports whether op preserves acyclicity and the in-degree bound.
// Prior knowledge does not need rechecking here: the edge space only ever
// contains pairs compatible with it. Rejections are logged for diagnostics
// and are not errors.
func (r *run) isValid(op operation) bool {
	valid := true
	switch op.kind {
	case opAdd:
		// Adding x->y is cycle-safe exactly when y cannot already reach x.
		valid = r.inDegree[op.y] < r.maxInDegree &&
			!r.g.HasEdge(op.y, op.x) &&
			!r.g.HasPath(op.y, op.x)
	case opDel:
		// Removing an edge can never create a cycle.
	case opRev:
		valid = r.inDegree[op.x] < r.maxInDegree && r.reverseIsAcyclic(op.x, op.y)
	}

	if !valid {
		r.logger.Debug("candidate rejected",
			"op", op.kind.String(), "x", r.g.Label(op.x), "y", r.g.Label(op.y))
	}
	return valid
}

// reverseIsAcyclic reports whether reversing x->y keeps the graph acyclic:
// no child z of x other than y may have a path to y, since such a path plus
// the reversed edge y->x would close a cycle through x.
func (r *run) reverseIsAcyclic(x, y int) bool {
	for _, z := range r.g.Children(x) {
		if z == y {
			continue
		}
		if r.g.HasPath(z, y) {
			return false
		}
	}
	return true
}

// scanPairs evaluates the candidates of one partition slice sequentially,
// in order, folding into a running best.
func (r *run) scanPairs(kind opKind, pairs []pair) scanResult {
	var res scanResult
	for _, p := range pairs {
		op := operation{x: p.x, y: p.y, kind: kind}
		if !r.isValid(op) {
			continue
		}
		delta, entries := r.eval.eval(r.g, op)
		res.entries = append(res.entries, entries...)
		if res.best.improves(delta) {
			res.best = candidate{op: op, delta: delta, ok: true}
		}
	}
	return res
}

// scanPartition scans one edge-space partition, either as a sequential fold
// or fanned out over worker goroutines. Workers only read the graph and the
// cache snapshot and return proposed results; chunk results are folded in
// chunk order, so the winning operation matches the sequential scan up to
// the improvement tolerance regardless of worker count.
func (r *run) scanPartition(kind opKind, s *pairSet) scanResult {
	pairs := s.pairs()
	if r.workers <= 1 || len(pairs) < 2*r.workers {
		return r.scanPairs(kind, pairs)
	}

	chunks := make([]scanResult, r.workers)
	perWorker := (len(pairs) + r.workers - 1) / r.workers

	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		start := w * perWorker
		end := min(start+perWorker, len(pairs))
		if start >= len(pairs) {
			break
		}
		wg.Add(1)
		go func(w int, chunk []pair) {
			defer wg.Done()
			chunks[w] = r.scanPairs(kind, chunk)
		}(w, pairs[start:end])
	}
	wg.Wait()

	var res scanResult
	for _, c := range chunks {
		res.fold(c)
	}
	return res
}

// searchStep runs one full iteration scan: all three partitions in order,
// carrying a single global best. All discovered cache entries are merged
// into the shared cache exactly once, after the scan, by this goroutine.
func (r *run) searchStep() candidate {
	res := r.scanPartition(opAdd, r.space.add)
	res.fold(r.scanPartition(opDel, r.space.del))
	res.fold(r.scanPartition(opRev, r.space.rev))

	r.cache.merge(res.entries)
	return res.best
}
