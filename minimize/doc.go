// Package minimize computes a minimal sum-of-products or product-of-sums
// cover of a boolean function given as minterms and don't-cares.
//
// The K-map packages never depend on it: kmap only draws the map, and the
// groups it shows are not the implicants chosen here. Callers pair the two
// through the Minimizer interface.
//
// QuineMcCluskey is the provided Minimizer:
//
//  1. Prime implicants are generated by repeatedly merging cubes that
//     differ in one unmasked bit (don't-cares take part in merging).
//  2. Essential primes are selected.
//  3. The remaining targets are covered by an exact branch-and-bound search
//     minimising the number of terms, then the number of literals.
//
// For SOP the targets are the minterms; for POS they are the maxterms and
// each selected cube is written as a sum of complemented literals.
//
// The result is an Expression whose String form is the symbolic spelling
// ("(A & ~B) | C") consumed by package literal, and whose Formula form is a
// gophersat bf.Formula used for equivalence checks.
package minimize
