package minimize

import (
	"fmt"
	"math/bits"
	"sort"
)

// QuineMcCluskey is an exact two-level Minimizer. The zero value is ready
// to use and safe for concurrent calls.
type QuineMcCluskey struct{}

var _ Minimizer = QuineMcCluskey{}

// Minimize returns a minimum cover of the function. Don't-cares that are
// also minterms are treated as minterms.
//
// Complexity: prime generation is O(3^n) in the worst case; the cover
// search is exponential in the number of non-essential primes, which is
// why n is capped at MaxVariables.
func (QuineMcCluskey) Minimize(vars []string, form Form, minterms, dontcares []int) (*Expression, error) {
	n := len(vars)
	if n == 0 {
		return nil, ErrNoVariables
	}
	if n > MaxVariables {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrTooManyVariables, n, MaxVariables)
	}
	if form != SOP && form != POS {
		return nil, fmt.Errorf("%w: %d", ErrUnknownForm, form)
	}
	total := 1 << n
	class := make([]int8, total) // 0 off, 1 on, 2 don't-care
	for _, d := range dontcares {
		if d < 0 || d >= total {
			return nil, fmt.Errorf("%w: don't-care %d for %d variables", ErrIndexOutOfRange, d, n)
		}
		class[d] = 2
	}
	for _, m := range minterms {
		if m < 0 || m >= total {
			return nil, fmt.Errorf("%w: minterm %d for %d variables", ErrIndexOutOfRange, m, n)
		}
		class[m] = 1
	}

	// POS covers the zeros of the function.
	want := int8(1)
	if form == POS {
		want = 0
	}
	var targets, cubes []int
	for i, c := range class {
		switch {
		case c == want:
			targets = append(targets, i)
			cubes = append(cubes, i)
		case c == 2:
			cubes = append(cubes, i)
		}
	}

	vs := append([]string(nil), vars...)
	if len(targets) == 0 {
		return &Expression{Form: form, Vars: vs}, nil
	}
	primes := primeImplicants(cubes)
	sortTerms(primes, n)

	return &Expression{Form: form, Vars: vs, Terms: selectCover(primes, targets, n)}, nil
}

// primeImplicants merges cubes pairwise until no merge applies and returns
// every cube that was never merged.
func primeImplicants(indices []int) []Term {
	current := make(map[Term]bool, len(indices))
	for _, i := range indices {
		current[Term{Value: i}] = true
	}
	primes := make(map[Term]bool)
	for len(current) > 0 {
		list := make([]Term, 0, len(current))
		for t := range current {
			list = append(list, t)
		}
		sort.Slice(list, func(a, b int) bool {
			if list[a].Mask != list[b].Mask {
				return list[a].Mask < list[b].Mask
			}
			return list[a].Value < list[b].Value
		})

		merged := make(map[Term]bool, len(list))
		next := make(map[Term]bool)
		for a := 0; a < len(list); a++ {
			for b := a + 1; b < len(list); b++ {
				if list[a].Mask != list[b].Mask {
					continue
				}
				diff := list[a].Value ^ list[b].Value
				if bits.OnesCount(uint(diff)) != 1 {
					continue
				}
				next[Term{Value: list[a].Value &^ diff, Mask: list[a].Mask | diff}] = true
				merged[list[a]], merged[list[b]] = true, true
			}
		}
		for _, t := range list {
			if !merged[t] {
				primes[t] = true
			}
		}
		current = next
	}

	out := make([]Term, 0, len(primes))
	for t := range primes {
		out = append(out, t)
	}

	return out
}

// sortTerms orders terms by literal count, then by which variables they
// fix (earlier variables first), then by value.
func sortTerms(ts []Term, n int) {
	sort.Slice(ts, func(a, b int) bool {
		la, lb := ts[a].Literals(n), ts[b].Literals(n)
		if la != lb {
			return la < lb
		}
		if ts[a].Mask != ts[b].Mask {
			return ts[a].Mask < ts[b].Mask
		}
		return ts[a].Value < ts[b].Value
	})
}

// selectCover picks essential primes, then searches for the cheapest set
// of remaining primes covering every target.
func selectCover(primes []Term, targets []int, n int) []Term {
	coveredBy := make([][]int, len(targets))
	for ti, m := range targets {
		for pi, p := range primes {
			if p.Covers(m) {
				coveredBy[ti] = append(coveredBy[ti], pi)
			}
		}
	}

	s := &coverSearch{
		primes:    primes,
		coveredBy: coveredBy,
		hits:      make([]int, len(targets)),
		n:         n,
		bestTerms: len(primes) + 1,
	}
	for _, ps := range coveredBy {
		if len(ps) == 1 && !s.has(ps[0]) {
			s.take(ps[0])
		}
	}
	s.search()

	out := make([]Term, len(s.best))
	for i, pi := range s.best {
		out[i] = primes[pi]
	}
	sortTerms(out, n)

	return out
}

type coverSearch struct {
	primes    []Term
	coveredBy [][]int // target index → primes covering it
	hits      []int   // target index → chosen primes covering it
	chosen    []int
	n         int

	best      []int
	bestTerms int
	bestLits  int
}

func (s *coverSearch) has(pi int) bool {
	for _, c := range s.chosen {
		if c == pi {
			return true
		}
	}

	return false
}

func (s *coverSearch) take(pi int) {
	s.chosen = append(s.chosen, pi)
	for ti, ps := range s.coveredBy {
		for _, p := range ps {
			if p == pi {
				s.hits[ti]++
			}
		}
	}
}

func (s *coverSearch) drop() {
	pi := s.chosen[len(s.chosen)-1]
	s.chosen = s.chosen[:len(s.chosen)-1]
	for ti, ps := range s.coveredBy {
		for _, p := range ps {
			if p == pi {
				s.hits[ti]--
			}
		}
	}
}

func (s *coverSearch) literals() int {
	l := 0
	for _, pi := range s.chosen {
		l += s.primes[pi].Literals(s.n)
	}

	return l
}

// search branches on the uncovered target with the fewest candidate primes.
// Only strictly cheaper covers replace the best one, so ties resolve to the
// first cover found in prime order.
func (s *coverSearch) search() {
	if len(s.chosen) > s.bestTerms {
		return
	}
	pick := -1
	for ti, h := range s.hits {
		if h == 0 && (pick < 0 || len(s.coveredBy[ti]) < len(s.coveredBy[pick])) {
			pick = ti
		}
	}
	if pick < 0 {
		terms, lits := len(s.chosen), s.literals()
		if terms < s.bestTerms || (terms == s.bestTerms && lits < s.bestLits) {
			s.best = append(s.best[:0], s.chosen...)
			s.bestTerms, s.bestLits = terms, lits
		}
		return
	}
	if len(s.chosen)+1 > s.bestTerms {
		return
	}
	for _, pi := range s.coveredBy[pick] {
		s.take(pi)
		s.search()
		s.drop()
	}
}
