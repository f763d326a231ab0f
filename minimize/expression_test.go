package minimize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmap/minimize"
)

// TestExpression_FormulaAgreesWithEval evaluates the gophersat formula on
// every assignment and compares it with Expression.Eval.
func TestExpression_FormulaAgreesWithEval(t *testing.T) {
	var qm minimize.QuineMcCluskey
	vars := minimize.DefaultVars(4)
	for _, form := range []minimize.Form{minimize.SOP, minimize.POS} {
		e, err := qm.Minimize(vars, form, []int{0, 2, 5, 7, 8, 10, 13, 15}, []int{1, 3})
		require.NoError(t, err)
		f := e.Formula()
		for i := 0; i < 16; i++ {
			model := make(map[string]bool, len(vars))
			for k, v := range vars {
				model[v] = i&(1<<(len(vars)-1-k)) != 0
			}
			assert.Equal(t, e.Eval(i), f.Eval(model), "%v index %d", form, i)
		}
	}
}

func TestExpression_Constants(t *testing.T) {
	sopFalse := &minimize.Expression{Form: minimize.SOP, Vars: minimize.DefaultVars(2)}
	assert.Equal(t, "False", sopFalse.String())
	assert.False(t, sopFalse.Eval(0))
	assert.False(t, sopFalse.Formula().Eval(map[string]bool{"A": true, "B": true}))

	posTrue := &minimize.Expression{Form: minimize.POS, Vars: minimize.DefaultVars(2)}
	assert.Equal(t, "True", posTrue.String())
	assert.True(t, posTrue.Eval(3))

	posFalse := &minimize.Expression{Form: minimize.POS, Vars: minimize.DefaultVars(2), Terms: []minimize.Term{{Value: 0, Mask: 3}}}
	assert.Equal(t, "False", posFalse.String())
	assert.False(t, posFalse.Formula().Eval(map[string]bool{"A": false, "B": true}))
}

func TestTerm(t *testing.T) {
	tm := minimize.Term{Value: 0b0101, Mask: 0b1010}
	assert.True(t, tm.Covers(0b1111))
	assert.True(t, tm.Covers(0b0101))
	assert.False(t, tm.Covers(0b0100))
	assert.Equal(t, 2, tm.Literals(4))
	assert.Equal(t, 4, tm.Size())
}

func TestDefaultVars(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, minimize.DefaultVars(3))
}
