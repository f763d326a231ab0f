package verify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/kmap/minimize"
)

// Sentinel errors for verification.
var (
	// ErrNilExpression indicates a nil expression was passed to a Checker.
	ErrNilExpression = errors.New("verify: expression is nil")
	// ErrUnknownChecker indicates an unsupported checker name.
	ErrUnknownChecker = errors.New("verify: unknown checker")
)

// Checker decides whether expr equals the function given by minterms on
// every index that is not a don't-care. Indices use expr.Vars[0] as the
// most significant bit.
type Checker interface {
	Equivalent(expr *minimize.Expression, minterms, dontcares []int) (bool, error)
}

// Checker names accepted by New.
const (
	NameSAT = "sat"
	NameBDD = "bdd"
)

// New returns the checker registered under name ("sat" or "bdd", any case).
func New(name string) (Checker, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameSAT:
		return SAT{}, nil
	case NameBDD:
		return BDD{}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownChecker, name)
}

// constant reports whether e is a constant function and which one.
func constant(e *minimize.Expression) (value, ok bool) {
	full := 1<<len(e.Vars) - 1
	if len(e.Terms) == 0 {
		return e.Form == minimize.POS, true
	}
	for _, t := range e.Terms {
		if t.Mask == full {
			return e.Form == minimize.SOP, true
		}
	}

	return false, false
}

// cubes returns the cube list the expression is a disjunction of, and
// whether the disjunction must be negated (POS terms are maxterm cubes).
func cubes(e *minimize.Expression) (ts []minimize.Term, negate bool) {
	return e.Terms, e.Form == minimize.POS
}

// clean drops duplicates and minterm/don't-care overlap (minterms win).
func clean(minterms, dontcares []int) (ms, ds []int) {
	on := make(map[int]bool, len(minterms))
	for _, m := range minterms {
		if !on[m] {
			on[m] = true
			ms = append(ms, m)
		}
	}
	dc := make(map[int]bool, len(dontcares))
	for _, d := range dontcares {
		if !on[d] && !dc[d] {
			dc[d] = true
			ds = append(ds, d)
		}
	}

	return ms, ds
}
