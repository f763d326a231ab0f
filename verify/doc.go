// Package verify checks that a minimized expression agrees with the
// function it was computed from on every care index (minterms and
// maxterms; don't-cares are free).
//
// Two independent Checkers are provided:
//
//   - SAT: builds care ∧ (expr ⊕ want) as a gophersat formula and asks the
//     solver for a model. No model means the two agree.
//   - BDD: builds both functions as rudd decision diagrams and counts the
//     care assignments on which they differ.
//
// Errors:
//
//   - ErrNilExpression: no expression given.
//   - ErrUnknownChecker: New called with a name other than "sat" or "bdd".
package verify
