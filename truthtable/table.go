package truthtable

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// Table maps every index in [0, 2^n) to its Classification.
// It is immutable once built.
type Table struct {
	vars    int
	entries []Classification
}

// Classify builds the truth table of an n-variable function.
// For each i in [0, 2^n): i ∈ minterms → True; else i ∈ dontcares →
// DontCare; else False. Indices outside the domain are ignored; reject them
// with Validate before calling.
//
// Complexity: O(2^n + (|m|+|d|)·log(|m|+|d|)).
func Classify(n int, minterms, dontcares []int) Table {
	if n < 0 {
		n = 0
	}
	total := 1 << n
	ms := indexSet(minterms)
	ds := indexSet(dontcares)

	entries := make([]Classification, total)
	for i := 0; i < total; i++ {
		switch {
		case ms.Contains(i):
			entries[i] = True
		case ds.Contains(i):
			entries[i] = DontCare
		default:
			entries[i] = False
		}
	}

	return Table{vars: n, entries: entries}
}

// Vars returns the number of variables.
func (t Table) Vars() int { return t.vars }

// Len returns 2^n, the number of classified indices.
func (t Table) Len() int { return len(t.entries) }

// At returns the classification of index i, or False outside the domain.
func (t Table) At(i int) Classification {
	if i < 0 || i >= len(t.entries) {
		return False
	}

	return t.entries[i]
}

// Indices returns, in ascending order, every index classified as c.
func (t Table) Indices(c Classification) []int {
	var out []int
	for i, e := range t.entries {
		if e == c {
			out = append(out, i)
		}
	}

	return out
}

// Maxterms returns the sorted indices in [0, 2^n) that are neither minterms
// nor don't-cares.
func Maxterms(n int, minterms, dontcares []int) []int {
	return Classify(n, minterms, dontcares).Indices(False)
}

// Normalize returns the sorted, de-duplicated form of idx.
func Normalize(idx []int) []int {
	set := indexSet(idx)
	out := make([]int, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(int))
	}

	return out
}

func indexSet(idx []int) *treeset.Set {
	set := treeset.NewWithIntComparator()
	for _, i := range idx {
		set.Add(i)
	}

	return set
}
