package measurement

import "fmt"

// IndexSet is an explicit set of 1-based observation indices, used to name
// domain knowledge about particular observations (a photometric outlier, a
// group of giant-branch stars) instead of burying it in slice arithmetic.
type IndexSet map[int]struct{}

// NewIndexSet builds an IndexSet from 1-based indices.
func NewIndexSet(indices ...int) IndexSet {
	s := make(IndexSet, len(indices))
	for _, i := range indices {
		s[i] = struct{}{}
	}
	return s
}

// Union returns a new IndexSet holding the indices of both sets.
func (s IndexSet) Union(o IndexSet) IndexSet {
	out := make(IndexSet, len(s)+len(o))
	for i := range s {
		out[i] = struct{}{}
	}
	for i := range o {
		out[i] = struct{}{}
	}
	return out
}

// Has reports whether the 1-based index i is in the set.
func (s IndexSet) Has(i int) bool {
	_, ok := s[i]
	return ok
}

// Len returns the number of indices in the set.
func (s IndexSet) Len() int {
	return len(s)
}

// Excluding returns the subsequence of s with the flagged 1-based indices
// removed, preserving order.
func (s Series) Excluding(set IndexSet) Series {
	out := make(Series, 0, len(s))
	for i, v := range s {
		if set.Has(i + 1) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Only returns the subsequence of s at the flagged 1-based indices,
// preserving order.
func (s Series) Only(set IndexSet) Series {
	out := make(Series, 0, set.Len())
	for i, v := range s {
		if set.Has(i + 1) {
			out = append(out, v)
		}
	}
	return out
}

// ExcludingPaired filters two positionally-correlated series by the same
// IndexSet, keeping them aligned.
func ExcludingPaired(x, y Series, set IndexSet) (Series, Series, error) {
	if len(x) != len(y) {
		return nil, nil, fmt.Errorf("%w: %d vs %d entries", ErrCorrelationLengthMismatch, len(x), len(y))
	}

	return x.Excluding(set), y.Excluding(set), nil
}
