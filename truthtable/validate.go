package truthtable

import "fmt"

// Validate checks input before it reaches Classify and the grid code:
// n must be in [MinVariables, MaxVariables], every index in [0, 2^n),
// minterms non-empty and the two sets disjoint.
// Returned errors wrap one of the package sentinels.
func Validate(n int, minterms, dontcares []int) error {
	if n < MinVariables || n > MaxVariables {
		return fmt.Errorf("%w: got %d, want %d..%d", ErrInvalidVariableCount, n, MinVariables, MaxVariables)
	}
	max := 1<<n - 1
	for _, i := range minterms {
		if i < 0 || i > max {
			return fmt.Errorf("%w: minterm %d, indices must be in 0..%d for %d variables", ErrInvalidIndex, i, max, n)
		}
	}
	for _, i := range dontcares {
		if i < 0 || i > max {
			return fmt.Errorf("%w: don't-care %d, indices must be in 0..%d for %d variables", ErrInvalidIndex, i, max, n)
		}
	}
	if len(minterms) == 0 {
		return ErrEmptyMintermSet
	}

	ms := indexSet(minterms)
	var both []int
	for _, d := range dontcares {
		if ms.Contains(d) {
			both = append(both, d)
		}
	}
	if len(both) > 0 {
		return fmt.Errorf("%w: %v", ErrOverlap, Normalize(both))
	}

	return nil
}
