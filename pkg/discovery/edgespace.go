package discovery

import "fmt"

// opKind identifies a single-edge operation.
type opKind int

const (
	opAdd opKind = iota
	opDel
	opRev
)

func (k opKind) String() string {
	switch k {
	case opAdd:
		return "Add"
	case opDel:
		return "Del"
	case opRev:
		return "Rev"
	}
	return fmt.Sprintf("opKind(%d)", int(k))
}

// operation is a candidate single-edge move, scoped to one iteration.
type operation struct {
	x, y int
	kind opKind
}

// pair is a directed vertex pair.
type pair struct {
	x, y int
}

// pairSet is an insertion-ordered set of directed vertex pairs. Scans
// iterate in insertion order, which fixes the tie-breaking order among
// equal-delta candidates; membership tests are O(1).
type pairSet struct {
	order   []pair
	members map[pair]struct{}
}

func newPairSet() *pairSet {
	return &pairSet{members: make(map[pair]struct{})}
}

func (s *pairSet) insert(p pair) bool {
	if _, ok := s.members[p]; ok {
		return false
	}
	s.members[p] = struct{}{}
	s.order = append(s.order, p)
	return true
}

func (s *pairSet) remove(p pair) bool {
	if _, ok := s.members[p]; !ok {
		return false
	}
	delete(s.members, p)
	for i, q := range s.order {
		if q == p {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *pairSet) contains(p pair) bool {
	_, ok := s.members[p]
	return ok
}

func (s *pairSet) len() int { return len(s.order) }

// pairs returns the members in insertion order. The slice is owned by the
// set and must not be modified.
func (s *pairSet) pairs() []pair { return s.order }

// opSpace partitions the legal single-edge operations on the current graph
// into addable, deletable, and reversible candidate pairs. The partitions
// are pairwise disjoint and, together with the prior knowledge, exactly
// mirror the graph: every mutation goes through update.
type opSpace struct {
	add *pairSet
	del *pairSet
	rev *pairSet
}

// mustInsert and mustRemove assert the bookkeeping preconditions of update.
// A failure means the partitions and the graph have drifted apart, which is
// a defect, not a runtime condition.
func mustInsert(s *pairSet, p pair, what string) {
	if !s.insert(p) {
		panic(fmt.Sprintf("discovery: edge space corrupted: %s already contains (%d, %d)", what, p.x, p.y))
	}
}

func mustRemove(s *pairSet, p pair, what string) {
	if !s.remove(p) {
		panic(fmt.Sprintf("discovery: edge space corrupted: %s does not contain (%d, %d)", what, p.x, p.y))
	}
}

// update incrementally adjusts the partitions after op was applied to the
// graph, without rescanning all vertex pairs.
func (sp *opSpace) update(op operation) {
	p := pair{x: op.x, y: op.y}
	q := pair{x: op.y, y: op.x}

	switch op.kind {
	case opAdd:
		mustRemove(sp.add, p, "addable")
		// Add(X, Y) implies that (X, Y) is not in the required list,
		// therefore Del(X, Y) is valid.
		mustInsert(sp.del, p, "deletable")
		// If Add(Y, X) and Del(X, Y) are valid, then Rev(X, Y) is valid.
		// Del(X, Y) is valid by construction, so check only Add(Y, X).
		if sp.add.contains(q) {
			mustInsert(sp.rev, p, "reversible")
		}
	case opDel:
		// Del(X, Y) implies that (X, Y) is not in the forbidden list,
		// therefore Add(X, Y) is valid.
		mustInsert(sp.add, p, "addable")
		mustRemove(sp.del, p, "deletable")
		if sp.add.contains(q) {
			mustRemove(sp.rev, p, "reversible")
		}
	case opRev:
		mustRemove(sp.add, q, "addable")
		mustRemove(sp.del, p, "deletable")
		mustRemove(sp.rev, p, "reversible")
		// Rev(X, Y) implies that (X, Y) is neither required nor forbidden,
		// therefore Add(X, Y) is valid; likewise (Y, X) is deletable and
		// reversible now that the edge runs Y -> X.
		mustInsert(sp.add, p, "addable")
		mustInsert(sp.del, q, "deletable")
		mustInsert(sp.rev, q, "reversible")
	default:
		panic(fmt.Sprintf("discovery: unknown operation kind %d", int(op.kind)))
	}
}
