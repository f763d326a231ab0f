package gray

import (
	"errors"
	"strconv"
)

// Sentinel errors for gray operations.
var (
	// ErrNegativeWidth indicates a negative label width was requested.
	ErrNegativeWidth = errors.New("gray: width must be non-negative")
	// ErrWidthTooLarge indicates the requested width exceeds MaxWidth.
	ErrWidthTooLarge = errors.New("gray: width exceeds MaxWidth")
	// ErrLengthMismatch indicates two labels of different widths were compared.
	ErrLengthMismatch = errors.New("gray: labels differ in length")
)

// MaxWidth bounds the label width accepted by Code (2^16 labels).
const MaxWidth = 16

// Label is a fixed-width bit string made of '0' and '1' characters.
// The most significant bit comes first.
type Label string

// Width returns the number of bits in the label.
func (l Label) Width() int { return len(l) }

// Value interprets the label as an unsigned base-2 integer.
// The empty label has value 0.
func (l Label) Value() int {
	if l == "" {
		return 0
	}
	v, err := strconv.ParseUint(string(l), 2, 64)
	if err != nil {
		return 0
	}

	return int(v)
}

// Concat joins two labels, l supplying the high-order bits.
func (l Label) Concat(low Label) Label { return l + low }
