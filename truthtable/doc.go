// Package truthtable classifies every input index of an n-variable boolean
// function as true (1), don't-care (X) or false (0).
//
// What:
//
//   - Classify builds a Table over [0, 2^n) from minterm and don't-care sets.
//   - Minterm membership is checked first: an index present in both sets is
//     classified True. Validate rejects such overlaps at the boundary.
//   - Maxterms returns the complement of minterms ∪ don't-cares.
//
// Validate is the boundary check every caller runs before handing input to
// the grid and grouping code. The core itself never fails on valid input.
//
// Errors:
//
//   - ErrInvalidVariableCount: n outside [MinVariables, MaxVariables].
//   - ErrInvalidIndex: an index outside [0, 2^n).
//   - ErrEmptyMintermSet: no minterms.
//   - ErrOverlap: an index is both a minterm and a don't-care.
package truthtable
