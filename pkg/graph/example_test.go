package graph_test

import (
	"fmt"

	"github.com/msartori/causalgo/pkg/graph"
)

func ExampleNew() {
	g, _ := graph.New([]string{"rain", "sprinkler", "wet"},
		[][2]string{{"rain", "wet"}, {"sprinkler", "wet"}})

	fmt.Println(g.Labels())
	fmt.Println(g.Edges())
	fmt.Println(g.Parents(2))
	fmt.Println(g.IsAcyclic())
	// Output:
	// [rain sprinkler wet]
	// [{0 2} {1 2}]
	// [0 1]
	// true
}

func ExampleDirected_TopologicalSort() {
	g, _ := graph.New([]string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})

	order, ok := g.TopologicalSort()
	fmt.Println(order, ok)
	// Output:
	// [0 1 2] true
}
