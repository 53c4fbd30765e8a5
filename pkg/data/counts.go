package data

// ravelIndex flattens a multi-index over the given cardinalities into a
// single offset, row-major (the last axis varies fastest).
type ravelIndex struct {
	strides []int
	size    int
}

func newRavelIndex(cards []int) ravelIndex {
	strides := make([]int, len(cards))
	size := 1
	for i := len(cards) - 1; i >= 0; i-- {
		strides[i] = size
		size *= cards[i]
	}
	return ravelIndex{strides: strides, size: size}
}

func (r ravelIndex) at(multi []int) int {
	offset := 0
	for i, m := range multi {
		offset += r.strides[i] * m
	}
	return offset
}

// MarginalCounts returns the observation count of each state of variable x.
// The result has length Cardinality(x).
func (d *Categorical) MarginalCounts(x int) []int {
	counts := make([]int, d.Cardinality(x))
	for _, c := range d.codes[x] {
		counts[c]++
	}
	return counts
}

// ConditionalCounts returns the counts of variable x's states for every
// joint state configuration of the parent variables. Row j holds the counts
// of x's states in the observations where the parents take the j-th joint
// configuration; rows enumerate configurations row-major over the parents'
// cardinalities. With no parents, the result is a single row equal to
// MarginalCounts.
func (d *Categorical) ConditionalCounts(x int, parents []int) [][]int {
	if len(parents) == 0 {
		return [][]int{d.MarginalCounts(x)}
	}

	cards := make([]int, len(parents))
	for i, z := range parents {
		cards[i] = d.Cardinality(z)
	}
	rmi := newRavelIndex(cards)

	counts := make([][]int, rmi.size)
	for j := range counts {
		counts[j] = make([]int, d.Cardinality(x))
	}

	multi := make([]int, len(parents))
	for r := 0; r < d.rows; r++ {
		for i, z := range parents {
			multi[i] = d.codes[z][r]
		}
		counts[rmi.at(multi)][d.codes[x][r]]++
	}
	return counts
}
