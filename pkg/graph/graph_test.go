package graph

import (
	"errors"
	"slices"
	"testing"
)

func TestEmpty_SortsLabels(t *testing.T) {
	g, err := Empty([]string{"c", "a", "b"})
	if err != nil {
		t.Fatalf("Empty() error = %v", err)
	}
	want := []string{"a", "b", "c"}
	if !slices.Equal(g.Labels(), want) {
		t.Errorf("Labels() = %v, want %v", g.Labels(), want)
	}
	if g.Order() != 3 || g.Size() != 0 {
		t.Errorf("Order() = %d, Size() = %d, want 3, 0", g.Order(), g.Size())
	}
}

func TestEmpty_RejectsBadLabels(t *testing.T) {
	if _, err := Empty([]string{"a", "a"}); !errors.Is(err, ErrDuplicateLabel) {
		t.Errorf("duplicate label error = %v, want ErrDuplicateLabel", err)
	}
	if _, err := Empty([]string{"a", ""}); !errors.Is(err, ErrEmptyLabel) {
		t.Errorf("empty label error = %v, want ErrEmptyLabel", err)
	}
}

func TestNew_BuildsEdges(t *testing.T) {
	g, err := New([]string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !g.HasEdge(0, 1) || !g.HasEdge(1, 2) {
		t.Errorf("edges missing: HasEdge(0,1) = %v, HasEdge(1,2) = %v", g.HasEdge(0, 1), g.HasEdge(1, 2))
	}
	if g.HasEdge(1, 0) {
		t.Error("HasEdge(1,0) = true, want false")
	}
}

func TestNew_UnknownLabel(t *testing.T) {
	_, err := New([]string{"a", "b"}, [][2]string{{"a", "z"}})
	if !errors.Is(err, ErrUnknownLabel) {
		t.Errorf("New() error = %v, want ErrUnknownLabel", err)
	}
}

func TestAddEdge_SelfLoop(t *testing.T) {
	g, _ := Empty([]string{"a", "b"})
	if err := g.AddEdge(0, 0); !errors.Is(err, ErrSelfLoop) {
		t.Errorf("AddEdge(0,0) error = %v, want ErrSelfLoop", err)
	}
}

func TestAddEdge_OutOfRange(t *testing.T) {
	g, _ := Empty([]string{"a", "b"})
	if err := g.AddEdge(0, 5); !errors.Is(err, ErrVertexOutOfRange) {
		t.Errorf("AddEdge(0,5) error = %v, want ErrVertexOutOfRange", err)
	}
}

func TestAddDelEdge_Idempotent(t *testing.T) {
	g, _ := Empty([]string{"a", "b"})
	if err := g.AddEdge(0, 1); err != nil {
		t.Fatalf("AddEdge() error = %v", err)
	}
	if err := g.AddEdge(0, 1); err != nil {
		t.Fatalf("repeated AddEdge() error = %v", err)
	}
	if g.Size() != 1 {
		t.Errorf("Size() = %d, want 1", g.Size())
	}
	if err := g.DelEdge(0, 1); err != nil {
		t.Fatalf("DelEdge() error = %v", err)
	}
	if err := g.DelEdge(0, 1); err != nil {
		t.Fatalf("repeated DelEdge() error = %v", err)
	}
	if g.Size() != 0 {
		t.Errorf("Size() = %d, want 0", g.Size())
	}
}

func TestParentsChildren_Sorted(t *testing.T) {
	g, _ := Empty([]string{"a", "b", "c", "d"})
	// Insert parents of d out of order.
	g.AddEdge(2, 3)
	g.AddEdge(0, 3)
	g.AddEdge(1, 3)

	want := []int{0, 1, 2}
	if got := g.Parents(3); !slices.Equal(got, want) {
		t.Errorf("Parents(3) = %v, want %v", got, want)
	}
	if got := g.Children(0); !slices.Equal(got, []int{3}) {
		t.Errorf("Children(0) = %v, want [3]", got)
	}
	if g.InDegree(3) != 3 || g.OutDegree(3) != 0 {
		t.Errorf("InDegree(3) = %d, OutDegree(3) = %d, want 3, 0", g.InDegree(3), g.OutDegree(3))
	}
}

func TestHasPath(t *testing.T) {
	g, _ := New(
		[]string{"a", "b", "c", "d"},
		[][2]string{{"a", "b"}, {"b", "c"}},
	)

	tests := []struct {
		name string
		a, b int
		want bool
	}{
		{"DirectEdge", 0, 1, true},
		{"Transitive", 0, 2, true},
		{"Reverse", 2, 0, false},
		{"Isolated", 0, 3, false},
		{"SelfNoCycle", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.HasPath(tt.a, tt.b); got != tt.want {
				t.Errorf("HasPath(%d, %d) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIsAcyclic(t *testing.T) {
	g, _ := New([]string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})
	if !g.IsAcyclic() {
		t.Error("IsAcyclic() = false for a chain, want true")
	}
	g.AddEdge(2, 0)
	if g.IsAcyclic() {
		t.Error("IsAcyclic() = true for a triangle cycle, want false")
	}
}

func TestTopologicalSort(t *testing.T) {
	g, _ := New([]string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})
	order, ok := g.TopologicalSort()
	if !ok {
		t.Fatal("TopologicalSort() ok = false, want true")
	}
	pos := make(map[int]int, len(order))
	for i, x := range order {
		pos[x] = i
	}
	for _, e := range g.Edges() {
		if pos[e.From] >= pos[e.To] {
			t.Errorf("edge %d->%d violates topological order %v", e.From, e.To, order)
		}
	}

	g.AddEdge(2, 0)
	if _, ok := g.TopologicalSort(); ok {
		t.Error("TopologicalSort() ok = true for cyclic graph, want false")
	}
}

func TestClone_Independent(t *testing.T) {
	g, _ := New([]string{"a", "b"}, [][2]string{{"a", "b"}})
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("Clone() not Equal to original")
	}
	c.DelEdge(0, 1)
	if !g.HasEdge(0, 1) {
		t.Error("mutating clone affected original")
	}
	if g.Equal(c) {
		t.Error("Equal() = true after clone diverged")
	}
}

func TestEdges_Deterministic(t *testing.T) {
	g, _ := Empty([]string{"a", "b", "c"})
	g.AddEdge(2, 0)
	g.AddEdge(0, 1)
	want := []Edge{{From: 0, To: 1}, {From: 2, To: 0}}
	if got := g.Edges(); !slices.Equal(got, want) {
		t.Errorf("Edges() = %v, want %v", got, want)
	}
}
