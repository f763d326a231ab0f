package simplify

import (
	"errors"

	"github.com/katalvlaran/kmap/kmap"
	"github.com/katalvlaran/kmap/minimize"
)

// Sentinel errors returned by Service.Simplify.
var (
	// ErrInvalidRequest indicates a request that fails field validation.
	ErrInvalidRequest = errors.New("simplify: invalid request")
	// ErrNotEquivalent indicates the minimized expression disagrees with
	// the input function on a care index.
	ErrNotEquivalent = errors.New("simplify: expression not equivalent to input")
)

// Request describes a function to simplify. Form is "SOP" or "POS";
// an empty Form means SOP.
type Request struct {
	Variables int    `json:"variables" validate:"min=2,max=4"`
	Minterms  []int  `json:"minterms" validate:"required,min=1,dive,min=0"`
	DontCares []int  `json:"dont_cares,omitempty" validate:"omitempty,dive,min=0"`
	Form      string `json:"form,omitempty" validate:"omitempty,oneof=SOP POS sop pos"`
}

// Result is the outcome of one request.
type Result struct {
	ID         string               `json:"id"`
	Map        *kmap.Map            `json:"-"`
	Expression *minimize.Expression `json:"-"`
	// Symbolic is the expression in ~ & | notation.
	Symbolic string        `json:"symbolic"`
	Literal  string        `json:"literal"`
	Form     minimize.Form `json:"form"`
	// Groups lists each group's decimal indices in discovery order.
	Groups [][]int `json:"groups"`
	// Verified is false only when the Service has no checker.
	Verified bool `json:"verified"`
}
