package graph

// HasPath reports whether a directed path from a to b exists.
// A vertex has no path to itself unless it lies on a cycle.
// Traversal is breadth-first in O(V+E).
func (g *Directed) HasPath(a, b int) bool {
	if a < 0 || a >= len(g.labels) || b < 0 || b >= len(g.labels) {
		return false
	}
	visited := make([]bool, len(g.labels))
	queue := []int{a}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		for y := range g.outgoing[x] {
			if y == b {
				return true
			}
			if !visited[y] {
				visited[y] = true
				queue = append(queue, y)
			}
		}
	}
	return false
}

// IsAcyclic reports whether the graph contains no directed cycle.
// Cycles are detected using depth-first search with white/gray/black
// coloring in O(V+E) time.
func (g *Directed) IsAcyclic() bool {
	const (
		white = iota
		gray
		black
	)

	color := make([]int, len(g.labels))
	var hasCycle bool

	var dfs func(x int)
	dfs = func(x int) {
		color[x] = gray
		for y := range g.outgoing[x] {
			switch color[y] {
			case white:
				dfs(y)
			case gray:
				hasCycle = true
				return
			}
		}
		color[x] = black
	}

	for x := range g.labels {
		if color[x] == white {
			dfs(x)
			if hasCycle {
				return false
			}
		}
	}
	return true
}

// TopologicalSort returns the vertices in an order where every edge points
// from an earlier to a later position, and false if the graph is cyclic.
// The order is deterministic for a given graph.
func (g *Directed) TopologicalSort() ([]int, bool) {
	inDegree := make([]int, len(g.labels))
	for y := range g.incoming {
		inDegree[y] = len(g.incoming[y])
	}

	// Kahn's algorithm with an index-ordered frontier.
	var frontier []int
	for x := range inDegree {
		if inDegree[x] == 0 {
			frontier = append(frontier, x)
		}
	}

	order := make([]int, 0, len(g.labels))
	for len(frontier) > 0 {
		x := frontier[0]
		frontier = frontier[1:]
		order = append(order, x)
		for _, y := range g.Children(x) {
			inDegree[y]--
			if inDegree[y] == 0 {
				frontier = append(frontier, y)
			}
		}
	}

	if len(order) != len(g.labels) {
		return nil, false
	}
	return order, true
}
