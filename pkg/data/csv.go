package data

import (
	"encoding/csv"
	"io"
	"sort"

	"github.com/msartori/causalgo/pkg/errors"
)

// FromCSV reads a categorical dataset from CSV. The first record is the
// header with variable labels; every following record is one observation
// with state names as cell values. State codes are assigned in sorted state
// name order, so encoding does not depend on row order.
func FromCSV(r io.Reader) (*Categorical, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "failed to read CSV")
	}
	if len(records) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "CSV must have a header and at least one observation")
	}

	header := records[0]
	observed := make(map[string]map[string]struct{}, len(header))
	raw := make(map[string][]string, len(header))
	for _, l := range header {
		if _, ok := raw[l]; ok {
			return nil, errors.New(errors.ErrCodeInvalidDataset, "duplicate variable label %q", l)
		}
		observed[l] = make(map[string]struct{})
		raw[l] = make([]string, 0, len(records)-1)
	}

	for i, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"row %d has %d fields, want %d", i+2, len(rec), len(header))
		}
		for j, cell := range rec {
			l := header[j]
			observed[l][cell] = struct{}{}
			raw[l] = append(raw[l], cell)
		}
	}

	states := make(map[string][]string, len(header))
	columns := make(map[string][]int, len(header))
	for _, l := range header {
		st := make([]string, 0, len(observed[l]))
		for s := range observed[l] {
			st = append(st, s)
		}
		sort.Strings(st)
		code := make(map[string]int, len(st))
		for c, s := range st {
			code[s] = c
		}
		col := make([]int, len(raw[l]))
		for r, cell := range raw[l] {
			col[r] = code[cell]
		}
		states[l] = st
		columns[l] = col
	}

	return NewCategorical(header, states, columns)
}
