// Package prior represents domain knowledge supplied to structure learning:
// directed edges that must appear in the learned graph and directed edges
// that must never appear.
//
// Constraints are direction-sensitive. Forbidding x->y says nothing about
// y->x; requiring x->y forbids neither deleting unrelated edges nor adding
// y->x (though doing so would be rejected later for creating a cycle).
package prior

import (
	"slices"
	"sort"

	"github.com/msartori/causalgo/pkg/errors"
)

// Edge is a directed constraint between two vertex indices.
type Edge struct {
	From int
	To   int
}

// ForbiddenRequired holds forbidden and required edge sets over a fixed
// label set. Vertices are indexed by sorted label order, matching
// [graph.Directed] and [data.Categorical].
//
// ForbiddenRequired is immutable after construction and safe for
// concurrent use.
type ForbiddenRequired struct {
	labels     []string
	index      map[string]int
	forbidden  []Edge
	required   []Edge
	forbidSet  map[Edge]struct{}
	requireSet map[Edge]struct{}
}

// NewForbiddenRequired builds prior knowledge from label pairs. Every pair
// must reference known labels, no pair may be both forbidden and required,
// and self-edges are rejected.
func NewForbiddenRequired(labels []string, forbidden, required [][2]string) (*ForbiddenRequired, error) {
	sorted := slices.Clone(labels)
	sort.Strings(sorted)
	index := make(map[string]int, len(sorted))
	for i, l := range sorted {
		index[l] = i
	}

	k := &ForbiddenRequired{
		labels:     sorted,
		index:      index,
		forbidSet:  make(map[Edge]struct{}, len(forbidden)),
		requireSet: make(map[Edge]struct{}, len(required)),
	}

	resolve := func(pair [2]string) (Edge, error) {
		x, ok := index[pair[0]]
		if !ok {
			return Edge{}, errors.New(errors.ErrCodeUnknownLabel, "no variable with label %q", pair[0])
		}
		y, ok := index[pair[1]]
		if !ok {
			return Edge{}, errors.New(errors.ErrCodeUnknownLabel, "no variable with label %q", pair[1])
		}
		if x == y {
			return Edge{}, errors.New(errors.ErrCodeInvalidInput,
				"constraint %s->%s is a self-edge", pair[0], pair[1])
		}
		return Edge{From: x, To: y}, nil
	}

	for _, pair := range forbidden {
		e, err := resolve(pair)
		if err != nil {
			return nil, err
		}
		if _, ok := k.forbidSet[e]; ok {
			continue
		}
		k.forbidSet[e] = struct{}{}
		k.forbidden = append(k.forbidden, e)
	}
	for _, pair := range required {
		e, err := resolve(pair)
		if err != nil {
			return nil, err
		}
		if _, ok := k.forbidSet[e]; ok {
			return nil, errors.New(errors.ErrCodePriorConflict,
				"edge %s->%s is both forbidden and required", pair[0], pair[1])
		}
		if _, ok := k.requireSet[e]; ok {
			continue
		}
		k.requireSet[e] = struct{}{}
		k.required = append(k.required, e)
	}

	return k, nil
}

// Labels returns the labels in index order (sorted ascending).
// The returned slice must not be modified.
func (k *ForbiddenRequired) Labels() []string { return k.labels }

// HasForbidden reports whether the edge x->y is forbidden.
func (k *ForbiddenRequired) HasForbidden(x, y int) bool {
	_, ok := k.forbidSet[Edge{From: x, To: y}]
	return ok
}

// HasRequired reports whether the edge x->y is required.
func (k *ForbiddenRequired) HasRequired(x, y int) bool {
	_, ok := k.requireSet[Edge{From: x, To: y}]
	return ok
}

// Forbidden returns the forbidden edges in insertion order.
// The returned slice must not be modified.
func (k *ForbiddenRequired) Forbidden() []Edge { return k.forbidden }

// Required returns the required edges in insertion order.
// The returned slice must not be modified.
func (k *ForbiddenRequired) Required() []Edge { return k.required }
