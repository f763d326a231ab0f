package gray

import "fmt"

// Code returns the reflected Gray code of width k: 2^k distinct labels in
// which every pair of cyclically consecutive entries differs in one bit.
//
// Code(0) is the single empty label. For k > 0 the result is Code(k-1)
// prefixed with '0', followed by Code(k-1) reversed and prefixed with '1'.
//
// Complexity: O(k·2^k) time and memory.
func Code(k int) ([]Label, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeWidth, k)
	}
	if k > MaxWidth {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrWidthTooLarge, k, MaxWidth)
	}

	codes := []Label{""}
	for w := 1; w <= k; w++ {
		next := make([]Label, 0, 2*len(codes))
		for _, c := range codes {
			next = append(next, "0"+c)
		}
		for i := len(codes) - 1; i >= 0; i-- {
			next = append(next, "1"+codes[i])
		}
		codes = next
	}

	return codes, nil
}

// MustCode is like Code but panics on error. Intended for widths known to be valid.
func MustCode(k int) []Label {
	codes, err := Code(k)
	if err != nil {
		panic(err)
	}

	return codes
}

// Hamming returns the number of bit positions in which a and b differ.
func Hamming(a, b Label) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	d := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			d++
		}
	}

	return d, nil
}
