package truthtable

import "errors"

// Sentinel errors for boundary validation.
var (
	// ErrInvalidVariableCount indicates the variable count is outside [MinVariables, MaxVariables].
	ErrInvalidVariableCount = errors.New("truthtable: variable count out of range")
	// ErrInvalidIndex indicates a minterm or don't-care index outside [0, 2^n).
	ErrInvalidIndex = errors.New("truthtable: index out of range")
	// ErrEmptyMintermSet indicates no minterms were supplied.
	ErrEmptyMintermSet = errors.New("truthtable: at least one minterm is required")
	// ErrOverlap indicates an index appears as both a minterm and a don't-care.
	ErrOverlap = errors.New("truthtable: index is both minterm and don't-care")
)

// Bounds on the number of variables a K-map can display.
const (
	MinVariables = 2
	MaxVariables = 4
)

// Classification is the value of a truth-table entry.
// The ordering is significant: every non-false value is >= DontCare and
// only True is >= True.
type Classification uint8

const (
	// False marks an index where the function is 0.
	False Classification = iota
	// DontCare marks an index whose output is unconstrained.
	DontCare
	// True marks a minterm.
	True
)

// String renders the classification the way a K-map cell shows it.
func (c Classification) String() string {
	switch c {
	case True:
		return "1"
	case DontCare:
		return "X"
	default:
		return "0"
	}
}
