package data

import (
	"slices"
	"sort"

	"github.com/msartori/causalgo/pkg/errors"
)

// Dataset is the minimal view structure learning needs: the variable labels,
// in the index order shared with graphs and prior knowledge.
type Dataset interface {
	Labels() []string
}

// Categorical holds observations of categorical variables encoded as
// integer state codes. Columns are stored in sorted label order, matching
// the vertex indexing of [graph.Directed], so vertex i always refers to
// column i.
//
// Categorical is immutable after construction and safe for concurrent use.
type Categorical struct {
	labels []string
	states [][]string // states[i] lists variable i's states in code order
	codes  [][]int    // codes[i][r] is the state code of variable i in row r
	rows   int
}

// NewCategorical builds a dataset from labeled, encoded columns. The states
// map supplies each variable's state names in code order; codes must index
// into them. Columns are reordered into sorted label order.
func NewCategorical(labels []string, states map[string][]string, columns map[string][]int) (*Categorical, error) {
	if len(labels) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "dataset must have at least one variable")
	}
	sorted := slices.Clone(labels)
	sort.Strings(sorted)
	if slices.Contains(sorted, "") {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "variable labels must not be empty")
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return nil, errors.New(errors.ErrCodeInvalidDataset, "duplicate variable label %q", sorted[i])
		}
	}

	d := &Categorical{
		labels: sorted,
		states: make([][]string, len(sorted)),
		codes:  make([][]int, len(sorted)),
		rows:   -1,
	}
	for i, l := range sorted {
		st, ok := states[l]
		if !ok || len(st) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidDataset, "variable %q has no states", l)
		}
		col, ok := columns[l]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidDataset, "variable %q has no observations", l)
		}
		if d.rows < 0 {
			d.rows = len(col)
		} else if len(col) != d.rows {
			return nil, errors.New(errors.ErrCodeInvalidDataset,
				"variable %q has %d observations, want %d", l, len(col), d.rows)
		}
		for r, c := range col {
			if c < 0 || c >= len(st) {
				return nil, errors.New(errors.ErrCodeInvalidDataset,
					"variable %q row %d: state code %d out of range [0, %d)", l, r, c, len(st))
			}
		}
		d.states[i] = slices.Clone(st)
		d.codes[i] = slices.Clone(col)
	}
	if d.rows == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "dataset must have at least one observation")
	}
	return d, nil
}

// Labels returns the variable labels in index order (sorted ascending).
// The returned slice must not be modified.
func (d *Categorical) Labels() []string { return d.labels }

// Len returns the number of observations.
func (d *Categorical) Len() int { return d.rows }

// Order returns the number of variables.
func (d *Categorical) Order() int { return len(d.labels) }

// Cardinality returns the number of states of variable x.
func (d *Categorical) Cardinality(x int) int { return len(d.states[x]) }

// States returns the state names of variable x in code order.
// The returned slice must not be modified.
func (d *Categorical) States(x int) []string { return d.states[x] }

// Column returns the encoded observations of variable x.
// The returned slice must not be modified.
func (d *Categorical) Column(x int) []int { return d.codes[x] }
