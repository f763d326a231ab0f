package minimize

import (
	"strings"

	"github.com/crillab/gophersat/bf"
)

// Symbols used by Expression.String. Package literal rewrites them.
const (
	NotSymbol = "~"
	AndSymbol = " & "
	OrSymbol  = " | "
	TrueText  = "True"
	FalseText = "False"
)

// Expression is a minimized function. For SOP each Term is a product of
// literals; for POS each Term is a maxterm cube rendered as a sum of
// complemented literals. It is immutable once returned.
type Expression struct {
	Form  Form
	Vars  []string
	Terms []Term
}

// Eval returns the value of the expression on index i.
func (e *Expression) Eval(i int) bool {
	hit := false
	for _, t := range e.Terms {
		if t.Covers(i) {
			hit = true
			break
		}
	}
	if e.Form == POS {
		return !hit
	}

	return hit
}

// Literals returns the total literal count across all terms.
func (e *Expression) Literals() int {
	n := 0
	for _, t := range e.Terms {
		n += t.Literals(len(e.Vars))
	}

	return n
}

// String renders the expression in symbolic form: "~" for negation, " & "
// and " | " for the connectives, parentheses around compound terms when
// there is more than one term, and True/False for constants.
func (e *Expression) String() string {
	inner, outer := AndSymbol, OrSymbol
	if e.Form == POS {
		inner, outer = OrSymbol, AndSymbol
	}
	if len(e.Terms) == 0 {
		if e.Form == POS {
			return TrueText
		}
		return FalseText
	}

	parts := make([]string, 0, len(e.Terms))
	for _, t := range e.Terms {
		lits := e.literals(t)
		if len(lits) == 0 {
			// a term with no literals spans every index
			if e.Form == POS {
				return FalseText
			}
			return TrueText
		}
		s := strings.Join(lits, inner)
		if len(lits) > 1 && len(e.Terms) > 1 {
			s = "(" + s + ")"
		}
		parts = append(parts, s)
	}

	return strings.Join(parts, outer)
}

// literals lists the term's literals in variable order.
func (e *Expression) literals(t Term) []string {
	n := len(e.Vars)
	var out []string
	for i, name := range e.Vars {
		bit := 1 << (n - 1 - i)
		if t.Mask&bit != 0 {
			continue
		}
		negated := t.Value&bit == 0
		if e.Form == POS {
			negated = !negated
		}
		if negated {
			out = append(out, NotSymbol+name)
		} else {
			out = append(out, name)
		}
	}

	return out
}

// Formula builds the equivalent gophersat formula over variables named
// after e.Vars.
func (e *Expression) Formula() bf.Formula {
	if len(e.Terms) == 0 {
		if e.Form == POS {
			return bf.True
		}
		return bf.False
	}
	n := len(e.Vars)
	terms := make([]bf.Formula, 0, len(e.Terms))
	for _, t := range e.Terms {
		var lits []bf.Formula
		for i, name := range e.Vars {
			bit := 1 << (n - 1 - i)
			if t.Mask&bit != 0 {
				continue
			}
			negated := t.Value&bit == 0
			if e.Form == POS {
				negated = !negated
			}
			if negated {
				lits = append(lits, bf.Not(bf.Var(name)))
			} else {
				lits = append(lits, bf.Var(name))
			}
		}
		switch {
		case len(lits) == 0 && e.Form == POS:
			terms = append(terms, bf.False)
		case len(lits) == 0:
			terms = append(terms, bf.True)
		case e.Form == POS:
			terms = append(terms, bf.Or(lits...))
		default:
			terms = append(terms, bf.And(lits...))
		}
	}
	if e.Form == POS {
		return bf.And(terms...)
	}

	return bf.Or(terms...)
}
