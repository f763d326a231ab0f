package minimize

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Sentinel errors for minimization.
var (
	// ErrUnknownForm indicates a form name other than SOP or POS.
	ErrUnknownForm = errors.New("minimize: unknown form")
	// ErrNoVariables indicates an empty variable list.
	ErrNoVariables = errors.New("minimize: at least one variable is required")
	// ErrTooManyVariables indicates more than MaxVariables variables.
	ErrTooManyVariables = errors.New("minimize: too many variables")
	// ErrIndexOutOfRange indicates a minterm or don't-care outside [0, 2^n).
	ErrIndexOutOfRange = errors.New("minimize: index out of range")
)

// MaxVariables bounds the exact cover search.
const MaxVariables = 8

// Form selects the canonical shape of the result.
type Form int

const (
	// SOP is sum-of-products.
	SOP Form = iota
	// POS is product-of-sums.
	POS
)

// String returns "SOP" or "POS".
func (f Form) String() string {
	if f == POS {
		return "POS"
	}

	return "SOP"
}

// MarshalText encodes the form as its name.
func (f Form) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText decodes a form name accepted by ParseForm.
func (f *Form) UnmarshalText(b []byte) error {
	v, err := ParseForm(string(b))
	if err != nil {
		return err
	}
	*f = v

	return nil
}

// ParseForm converts "SOP"/"POS" (any case) into a Form.
func ParseForm(s string) (Form, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SOP":
		return SOP, nil
	case "POS":
		return POS, nil
	}

	return SOP, fmt.Errorf("%w: %q", ErrUnknownForm, s)
}

// DefaultVars returns the first n of A, B, C, … as variable names.
func DefaultVars(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('A' + i))
	}

	return out
}

// Term is a cube over n variables. Bits set in Mask are free; the other
// bits of an index must equal those of Value. Value has no masked bits set.
// Variable i corresponds to bit n-1-i, so the first variable is the MSB.
type Term struct {
	Value int
	Mask  int
}

// Covers reports whether index i lies in the cube.
func (t Term) Covers(i int) bool { return i&^t.Mask == t.Value }

// Literals returns the number of fixed variables among n.
func (t Term) Literals(n int) int { return n - bits.OnesCount(uint(t.Mask)) }

// Size returns the number of indices the cube spans.
func (t Term) Size() int { return 1 << bits.OnesCount(uint(t.Mask)) }

// Minimizer produces a simplified expression for a function over vars.
// Indices are read with vars[0] as the most significant bit.
type Minimizer interface {
	Minimize(vars []string, form Form, minterms, dontcares []int) (*Expression, error)
}
