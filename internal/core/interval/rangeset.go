package interval

import (
	"math/big"
	"slices"
)

// RangeSet is an unordered collection of intervals. Members may overlap or touch; nothing merges them
type RangeSet []Interval

// Measure is the exact total length. Sums past 2^64 are normal for wide inputs
func (rs RangeSet) Measure() *big.Int {
	total := new(big.Int)
	var n big.Int
	for _, iv := range rs {
		total.Add(total, n.SetUint64(iv.Len()))
	}
	return total
}

// Clone returns an independent copy
func (rs RangeSet) Clone() RangeSet { return append(RangeSet(nil), rs...) }

// Sorted returns a copy ordered by start, then end
func (rs RangeSet) Sorted() RangeSet {
	out := rs.Clone()
	slices.SortFunc(out, func(a, b Interval) int {
		if a.Start != b.Start {
			if a.Start < b.Start {
				return -1
			}
			return 1
		}
		switch {
		case a.End < b.End:
			return -1
		case a.End > b.End:
			return 1
		}
		return 0
	})
	return out
}

// NonEmpty drops members with no points
func (rs RangeSet) NonEmpty() RangeSet {
	out := make(RangeSet, 0, len(rs))
	for _, iv := range rs {
		if !iv.Empty() {
			out = append(out, iv)
		}
	}
	return out
}
