package graph

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

var (
	// ErrUnknownLabel is returned by [New] and [Directed.Index] when a label
	// does not belong to the graph's vertex set.
	ErrUnknownLabel = errors.New("unknown vertex label")

	// ErrDuplicateLabel is returned by [New] and [Empty] when the label set
	// contains the same label twice. Labels must be unique.
	ErrDuplicateLabel = errors.New("duplicate vertex label")

	// ErrEmptyLabel is returned by [New] and [Empty] when a label is the
	// empty string. All vertices must have non-empty labels.
	ErrEmptyLabel = errors.New("vertex label must not be empty")

	// ErrSelfLoop is returned by [Directed.AddEdge] when source and target
	// coincide. Graphs used for structure learning never carry self-loops.
	ErrSelfLoop = errors.New("self-loops are not allowed")

	// ErrVertexOutOfRange is returned by edge operations when a vertex index
	// is negative or not smaller than [Directed.Order].
	ErrVertexOutOfRange = errors.New("vertex index out of range")
)

// Edge is a directed vertex pair (From -> To), expressed in vertex indices.
type Edge struct {
	From int
	To   int
}

// Directed is a directed graph over a fixed vertex set. Vertices are
// integer-indexed in the sorted order of their labels, so two graphs built
// from the same label set agree on indices regardless of input order.
//
// The zero value is not usable - use [New] or [Empty]. Directed is not safe
// for concurrent mutation without external synchronization; concurrent
// read-only access is safe.
type Directed struct {
	labels   []string
	index    map[string]int
	outgoing []map[int]struct{} // adjacency, x -> set of children
	incoming []map[int]struct{} // reverse adjacency, y -> set of parents
	size     int                // number of edges
}

// Empty creates a graph with the given vertex labels and no edges.
// Labels are sorted; the i-th vertex is the i-th label in sorted order.
func Empty(labels []string) (*Directed, error) {
	sorted := slices.Clone(labels)
	sort.Strings(sorted)
	index := make(map[string]int, len(sorted))
	for i, l := range sorted {
		if l == "" {
			return nil, ErrEmptyLabel
		}
		if _, ok := index[l]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, l)
		}
		index[l] = i
	}

	g := &Directed{
		labels:   sorted,
		index:    index,
		outgoing: make([]map[int]struct{}, len(sorted)),
		incoming: make([]map[int]struct{}, len(sorted)),
	}
	for i := range sorted {
		g.outgoing[i] = make(map[int]struct{})
		g.incoming[i] = make(map[int]struct{})
	}
	return g, nil
}

// New creates a graph with the given vertex labels and edges, where edges
// are (from, to) label pairs. Returns ErrUnknownLabel if an edge references
// a label outside the vertex set.
func New(labels []string, edges [][2]string) (*Directed, error) {
	g, err := Empty(labels)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		x, ok := g.index[e[0]]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, e[0])
		}
		y, ok := g.index[e[1]]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, e[1])
		}
		if err := g.AddEdge(x, y); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Order returns the number of vertices.
func (g *Directed) Order() int { return len(g.labels) }

// Size returns the number of edges.
func (g *Directed) Size() int { return g.size }

// Labels returns the vertex labels in index order (sorted ascending).
// The returned slice must not be modified.
func (g *Directed) Labels() []string { return g.labels }

// Label returns the label of vertex x. Panics if x is out of range.
func (g *Directed) Label(x int) string { return g.labels[x] }

// Index returns the index of the vertex with the given label.
func (g *Directed) Index(label string) (int, error) {
	i, ok := g.index[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	return i, nil
}

func (g *Directed) checkVertex(x int) error {
	if x < 0 || x >= len(g.labels) {
		return fmt.Errorf("%w: %d", ErrVertexOutOfRange, x)
	}
	return nil
}

// AddEdge inserts the edge x->y. Inserting an existing edge is a no-op.
// Returns ErrSelfLoop if x == y, or ErrVertexOutOfRange for bad indices.
func (g *Directed) AddEdge(x, y int) error {
	if err := g.checkVertex(x); err != nil {
		return err
	}
	if err := g.checkVertex(y); err != nil {
		return err
	}
	if x == y {
		return fmt.Errorf("%w: %q", ErrSelfLoop, g.labels[x])
	}
	if _, ok := g.outgoing[x][y]; ok {
		return nil
	}
	g.outgoing[x][y] = struct{}{}
	g.incoming[y][x] = struct{}{}
	g.size++
	return nil
}

// DelEdge removes the edge x->y. Removing a missing edge is a no-op.
func (g *Directed) DelEdge(x, y int) error {
	if err := g.checkVertex(x); err != nil {
		return err
	}
	if err := g.checkVertex(y); err != nil {
		return err
	}
	if _, ok := g.outgoing[x][y]; !ok {
		return nil
	}
	delete(g.outgoing[x], y)
	delete(g.incoming[y], x)
	g.size--
	return nil
}

// HasEdge reports whether the edge x->y exists.
// Out-of-range indices report false.
func (g *Directed) HasEdge(x, y int) bool {
	if x < 0 || x >= len(g.labels) {
		return false
	}
	_, ok := g.outgoing[x][y]
	return ok
}

// Parents returns the parent set of y in ascending index order.
func (g *Directed) Parents(y int) []int { return sortedKeys(g.incoming[y]) }

// Children returns the child set of x in ascending index order.
func (g *Directed) Children(x int) []int { return sortedKeys(g.outgoing[x]) }

// InDegree returns the number of parents of y.
func (g *Directed) InDegree(y int) int { return len(g.incoming[y]) }

// OutDegree returns the number of children of x.
func (g *Directed) OutDegree(x int) int { return len(g.outgoing[x]) }

// Edges returns all edges sorted by (From, To). The slice is a copy.
func (g *Directed) Edges() []Edge {
	edges := make([]Edge, 0, g.size)
	for x := range g.outgoing {
		for y := range g.outgoing[x] {
			edges = append(edges, Edge{From: x, To: y})
		}
	}
	slices.SortFunc(edges, func(a, b Edge) int {
		if a.From != b.From {
			return a.From - b.From
		}
		return a.To - b.To
	})
	return edges
}

// Clone returns a deep copy sharing no mutable state with the receiver.
// Labels and the label index are immutable and shared.
func (g *Directed) Clone() *Directed {
	c := &Directed{
		labels:   g.labels,
		index:    g.index,
		outgoing: make([]map[int]struct{}, len(g.labels)),
		incoming: make([]map[int]struct{}, len(g.labels)),
		size:     g.size,
	}
	for i := range g.labels {
		c.outgoing[i] = make(map[int]struct{}, len(g.outgoing[i]))
		for y := range g.outgoing[i] {
			c.outgoing[i][y] = struct{}{}
		}
		c.incoming[i] = make(map[int]struct{}, len(g.incoming[i]))
		for x := range g.incoming[i] {
			c.incoming[i][x] = struct{}{}
		}
	}
	return c
}

// Equal reports whether two graphs have the same labels and the same edges.
func (g *Directed) Equal(h *Directed) bool {
	if h == nil || !slices.Equal(g.labels, h.labels) || g.size != h.size {
		return false
	}
	for x := range g.outgoing {
		for y := range g.outgoing[x] {
			if !h.HasEdge(x, y) {
				return false
			}
		}
	}
	return true
}

func sortedKeys(set map[int]struct{}) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
