package verify

import (
	"fmt"

	"github.com/dalzilio/rudd"

	"github.com/katalvlaran/kmap/minimize"
)

// BDD checks equivalence with rudd binary decision diagrams.
type BDD struct{}

var _ Checker = BDD{}

// Equivalent counts the care assignments on which expr and the function
// differ; the expression is equivalent iff the count is zero.
func (BDD) Equivalent(expr *minimize.Expression, minterms, dontcares []int) (bool, error) {
	if expr == nil {
		return false, ErrNilExpression
	}
	n := len(expr.Vars)
	if n == 0 {
		return false, minimize.ErrNoVariables
	}
	b, err := rudd.New(n)
	if err != nil {
		return false, fmt.Errorf("verify: bdd init: %w", err)
	}
	ms, ds := clean(minterms, dontcares)

	ts, negate := cubes(expr)
	e := cubeUnion(b, n, ts)
	if negate {
		e = b.Not(e)
	}
	want := cubeUnion(b, n, fullCubes(ms))
	diff := b.Or(b.And(e, b.Not(want)), b.And(b.Not(e), want))
	if len(ds) > 0 {
		diff = b.And(diff, b.Not(cubeUnion(b, n, fullCubes(ds))))
	}

	return b.Satcount(diff).Sign() == 0, nil
}

// cubeUnion builds the disjunction of the cubes; an empty list is false.
func cubeUnion(b *rudd.BDD, n int, ts []minimize.Term) rudd.Node {
	out := b.And(b.Ithvar(0), b.NIthvar(0))
	for _, t := range ts {
		c := b.Or(b.Ithvar(0), b.NIthvar(0))
		for j := 0; j < n; j++ {
			bit := 1 << (n - 1 - j)
			if t.Mask&bit != 0 {
				continue
			}
			if t.Value&bit != 0 {
				c = b.And(c, b.Ithvar(j))
			} else {
				c = b.And(c, b.NIthvar(j))
			}
		}
		out = b.Or(out, c)
	}

	return out
}

func fullCubes(idx []int) []minimize.Term {
	out := make([]minimize.Term, len(idx))
	for k, i := range idx {
		out[k] = minimize.Term{Value: i}
	}

	return out
}
