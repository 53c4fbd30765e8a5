package discovery

import "testing"

func TestPairSet_InsertionOrder(t *testing.T) {
	s := newPairSet()
	in := []pair{{x: 2, y: 0}, {x: 0, y: 1}, {x: 1, y: 2}}
	for _, p := range in {
		if !s.insert(p) {
			t.Fatalf("insert(%v) = false, want true", p)
		}
	}
	if s.insert(pair{x: 0, y: 1}) {
		t.Error("re-insert succeeded, want duplicate rejected")
	}

	got := s.pairs()
	if len(got) != len(in) {
		t.Fatalf("len(pairs) = %d, want %d", len(got), len(in))
	}
	for i := range in {
		if got[i] != in[i] {
			t.Errorf("pairs()[%d] = %v, want %v", i, got[i], in[i])
		}
	}

	if !s.remove(pair{x: 0, y: 1}) {
		t.Fatal("remove() = false, want true")
	}
	if s.contains(pair{x: 0, y: 1}) {
		t.Error("contains() after remove = true, want false")
	}
	got = s.pairs()
	want := []pair{{x: 2, y: 0}, {x: 1, y: 2}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pairs()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// newSpace builds partitions for a two-vertex graph with no edges and no
// prior constraints: both directions addable, nothing deletable/reversible.
func newSpace() *opSpace {
	sp := &opSpace{add: newPairSet(), del: newPairSet(), rev: newPairSet()}
	sp.add.insert(pair{x: 0, y: 1})
	sp.add.insert(pair{x: 1, y: 0})
	return sp
}

func checkDisjoint(t *testing.T, sp *opSpace) {
	t.Helper()
	for _, p := range sp.add.pairs() {
		if sp.del.contains(p) {
			t.Errorf("pair %v in both addable and deletable", p)
		}
	}
	for _, p := range sp.del.pairs() {
		if sp.add.contains(p) {
			t.Errorf("pair %v in both deletable and addable", p)
		}
	}
	for _, p := range sp.rev.pairs() {
		if !sp.del.contains(p) {
			t.Errorf("reversible pair %v is not deletable", p)
		}
	}
}

func TestOpSpace_UpdateRoundTrip(t *testing.T) {
	sp := newSpace()
	p := pair{x: 0, y: 1}

	sp.update(operation{x: 0, y: 1, kind: opAdd})
	if sp.add.contains(p) {
		t.Error("added edge still addable")
	}
	if !sp.del.contains(p) {
		t.Error("added edge not deletable")
	}
	if !sp.rev.contains(p) {
		t.Error("added edge not reversible")
	}
	checkDisjoint(t, sp)

	sp.update(operation{x: 0, y: 1, kind: opDel})
	if !sp.add.contains(p) {
		t.Error("deleted edge not addable again")
	}
	if sp.del.contains(p) || sp.rev.contains(p) {
		t.Error("deleted edge still deletable or reversible")
	}
	checkDisjoint(t, sp)
}

func TestOpSpace_UpdateReverse(t *testing.T) {
	sp := newSpace()
	sp.update(operation{x: 0, y: 1, kind: opAdd})
	sp.update(operation{x: 0, y: 1, kind: opRev})

	// After reversing, the edge runs 1 -> 0.
	p, q := pair{x: 0, y: 1}, pair{x: 1, y: 0}
	if !sp.add.contains(p) {
		t.Error("reversed-away direction not addable")
	}
	if !sp.del.contains(q) || !sp.rev.contains(q) {
		t.Error("reversed edge not deletable and reversible")
	}
	if sp.del.contains(p) || sp.rev.contains(p) {
		t.Error("old direction still deletable or reversible")
	}
	checkDisjoint(t, sp)
}

func TestOpSpace_UpdatePanicsOnDrift(t *testing.T) {
	sp := newSpace()
	defer func() {
		if recover() == nil {
			t.Fatal("update() on missing deletable pair did not panic")
		}
	}()
	sp.update(operation{x: 0, y: 1, kind: opDel})
}
