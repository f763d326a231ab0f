// Package kmap assembles a Karnaugh map from a classified truth table and
// groups its true and don't-care cells for display.
//
// Pipeline:
//
//	n, minterms, don't-cares
//	  → truthtable.Validate / truthtable.Classify
//	  → Axes (Gray-coded row and column labels)
//	  → AssembleGrid
//	  → FindGroups (toroidal flood fill via gridgraph)
//
// Rows carry the n/2 high-order bits, columns the remaining low-order bits.
// Cell (i, j) holds the classification of the index whose bits are
// Rows[i] followed by Cols[j].
//
// Groups are maximal connected regions of non-false cells on the torus that
// contain at least one true cell. They are a display aid: they are not the
// prime implicants chosen by a minimizer and may merge several of them.
package kmap
