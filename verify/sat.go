package verify

import (
	"github.com/crillab/gophersat/bf"

	"github.com/katalvlaran/kmap/minimize"
)

// SAT checks equivalence with the gophersat solver.
type SAT struct{}

var _ Checker = SAT{}

// Equivalent solves care ∧ (expr ⊕ want); the expression is equivalent iff
// no model exists.
func (SAT) Equivalent(expr *minimize.Expression, minterms, dontcares []int) (bool, error) {
	if expr == nil {
		return false, ErrNilExpression
	}
	if len(expr.Vars) == 0 {
		return false, minimize.ErrNoVariables
	}
	ms, ds := clean(minterms, dontcares)
	vars := expr.Vars

	// Constants are spelled as v∧¬v / v∨¬v: the solver's CNF conversion
	// does not accept a bare constant at every position.
	var f bf.Formula
	if v, ok := constant(expr); ok {
		f = constFormula(vars[0], v)
	} else {
		f = expr.Formula()
	}

	want := constFormula(vars[0], false)
	if len(ms) > 0 {
		want = indexFormula(vars, ms)
	}
	check := bf.Xor(f, want)
	if len(ds) > 0 {
		check = bf.And(bf.Not(indexFormula(vars, ds)), check)
	}

	return bf.Solve(check) == nil, nil
}

// indexFormula is the disjunction of the full minterms of idx.
func indexFormula(vars []string, idx []int) bf.Formula {
	n := len(vars)
	terms := make([]bf.Formula, len(idx))
	for k, i := range idx {
		lits := make([]bf.Formula, n)
		for j, name := range vars {
			if i&(1<<(n-1-j)) != 0 {
				lits[j] = bf.Var(name)
			} else {
				lits[j] = bf.Not(bf.Var(name))
			}
		}
		terms[k] = bf.And(lits...)
	}

	return bf.Or(terms...)
}

func constFormula(name string, v bool) bf.Formula {
	x := bf.Var(name)
	if v {
		return bf.Or(x, bf.Not(x))
	}

	return bf.And(x, bf.Not(x))
}
