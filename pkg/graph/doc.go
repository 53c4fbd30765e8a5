// Package graph provides the directed graph used by structure learning.
//
// # Overview
//
// Structure-learning algorithms search over directed acyclic graphs whose
// vertex set is fixed by the dataset: one vertex per variable. This package
// therefore fixes the vertex set at construction time and indexes vertices
// by the sorted order of their labels, so that any two graphs over the same
// variables agree on indices. All edge operations work on indices; labels
// are resolved once at the boundary with [Directed.Index].
//
// # Basic Usage
//
// Create a graph with [New] or [Empty], then mutate it with
// [Directed.AddEdge] and [Directed.DelEdge]:
//
//	g, _ := graph.New(
//		[]string{"rain", "sprinkler", "wet"},
//		[][2]string{{"rain", "wet"}, {"sprinkler", "wet"}},
//	)
//
// Query structure with [Directed.Parents], [Directed.Children],
// [Directed.HasEdge], and reachability with [Directed.HasPath]. Use
// [Directed.IsAcyclic] to verify the DAG property after external edits.
//
// # Determinism
//
// Parents, Children, and Edges return results in ascending index order.
// Optimizers rely on this: parent sets are used as cache keys and must be
// canonical regardless of the order edges were inserted.
package graph
