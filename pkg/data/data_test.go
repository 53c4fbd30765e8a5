package data

import (
	"slices"
	"strings"
	"testing"

	"github.com/msartori/causalgo/pkg/errors"
)

const wetGrassCSV = `sprinkler,rain,wet
on,no,yes
off,yes,yes
off,no,no
on,yes,yes
off,no,no
off,yes,yes
`

func TestFromCSV(t *testing.T) {
	d, err := FromCSV(strings.NewReader(wetGrassCSV))
	if err != nil {
		t.Fatalf("FromCSV() error = %v", err)
	}

	// Columns are reordered into sorted label order.
	want := []string{"rain", "sprinkler", "wet"}
	if !slices.Equal(d.Labels(), want) {
		t.Errorf("Labels() = %v, want %v", d.Labels(), want)
	}
	if d.Len() != 6 {
		t.Errorf("Len() = %d, want 6", d.Len())
	}
	if d.Order() != 3 {
		t.Errorf("Order() = %d, want 3", d.Order())
	}

	// rain: {no, yes} in sorted state order.
	if got := d.States(0); !slices.Equal(got, []string{"no", "yes"}) {
		t.Errorf("States(rain) = %v, want [no yes]", got)
	}
	if d.Cardinality(1) != 2 {
		t.Errorf("Cardinality(sprinkler) = %d, want 2", d.Cardinality(1))
	}
	// rain column: no,yes,no,yes,no,yes -> 0,1,0,1,0,1.
	if got := d.Column(0); !slices.Equal(got, []int{0, 1, 0, 1, 0, 1}) {
		t.Errorf("Column(rain) = %v, want [0 1 0 1 0 1]", got)
	}
}

func TestFromCSV_Errors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		code errors.Code
	}{
		{"HeaderOnly", "a,b\n", errors.ErrCodeInvalidDataset},
		{"DuplicateLabel", "a,a\n0,1\n", errors.ErrCodeInvalidDataset},
		{"RaggedRow", "a,b\n0\n", errors.ErrCodeInvalidFormat},
		{"Empty", "", errors.ErrCodeInvalidDataset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromCSV(strings.NewReader(tt.csv))
			if err == nil {
				t.Fatal("FromCSV() error = nil, want error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("FromCSV() error code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestNewCategorical_Validation(t *testing.T) {
	states := map[string][]string{"a": {"x", "y"}, "b": {"x", "y"}}

	_, err := NewCategorical([]string{"a", "b"},
		states, map[string][]int{"a": {0, 1}, "b": {0}})
	if !errors.Is(err, errors.ErrCodeInvalidDataset) {
		t.Errorf("mismatched lengths error code = %v, want INVALID_DATASET", errors.GetCode(err))
	}

	_, err = NewCategorical([]string{"a", "b"},
		states, map[string][]int{"a": {0, 2}, "b": {0, 1}})
	if !errors.Is(err, errors.ErrCodeInvalidDataset) {
		t.Errorf("out-of-range code error = %v, want INVALID_DATASET", errors.GetCode(err))
	}
}

func TestMarginalCounts(t *testing.T) {
	d, err := FromCSV(strings.NewReader(wetGrassCSV))
	if err != nil {
		t.Fatalf("FromCSV() error = %v", err)
	}
	// rain: 3 no, 3 yes.
	if got := d.MarginalCounts(0); !slices.Equal(got, []int{3, 3}) {
		t.Errorf("MarginalCounts(rain) = %v, want [3 3]", got)
	}
	// wet: 2 no, 4 yes.
	if got := d.MarginalCounts(2); !slices.Equal(got, []int{2, 4}) {
		t.Errorf("MarginalCounts(wet) = %v, want [2 4]", got)
	}
}

func TestConditionalCounts(t *testing.T) {
	d, err := FromCSV(strings.NewReader(wetGrassCSV))
	if err != nil {
		t.Fatalf("FromCSV() error = %v", err)
	}

	// wet given rain: rain=no -> wet {no:2, yes:1}; rain=yes -> wet {no:0, yes:3}.
	got := d.ConditionalCounts(2, []int{0})
	want := [][]int{{2, 1}, {0, 3}}
	if len(got) != len(want) {
		t.Fatalf("ConditionalCounts rows = %d, want %d", len(got), len(want))
	}
	for j := range want {
		if !slices.Equal(got[j], want[j]) {
			t.Errorf("ConditionalCounts row %d = %v, want %v", j, got[j], want[j])
		}
	}

	// No parents degenerates to a single marginal row.
	got = d.ConditionalCounts(2, nil)
	if len(got) != 1 || !slices.Equal(got[0], []int{2, 4}) {
		t.Errorf("ConditionalCounts(wet, nil) = %v, want [[2 4]]", got)
	}
}

func TestConditionalCounts_TwoParents(t *testing.T) {
	d, err := FromCSV(strings.NewReader(wetGrassCSV))
	if err != nil {
		t.Fatalf("FromCSV() error = %v", err)
	}

	// wet given (rain, sprinkler); configurations row-major:
	// (no,off), (no,on), (yes,off), (yes,on).
	got := d.ConditionalCounts(2, []int{0, 1})
	want := [][]int{{2, 0}, {0, 1}, {0, 2}, {0, 1}}
	for j := range want {
		if !slices.Equal(got[j], want[j]) {
			t.Errorf("ConditionalCounts row %d = %v, want %v", j, got[j], want[j])
		}
	}

	total := 0
	for _, row := range got {
		for _, c := range row {
			total += c
		}
	}
	if total != d.Len() {
		t.Errorf("counts sum = %d, want %d", total, d.Len())
	}
}
