// Package gridgraph treats a 2D grid of integer cell values as a graph and
// finds its connected "islands", optionally on a torus.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable thresholds.
//   - Cells with value ≥ LandThreshold are land; everything else is water.
//   - With Wrap set, the grid is a torus: the first and last rows (and
//     columns) are neighbours. This is the adjacency of Gray-coded K-map axes.
//   - ConnectedComponents returns only islands holding at least one cell with
//     value ≥ AnchorThreshold; islands made of weaker land alone are dropped.
//
// Why:
//
//   - K-maps: don't-care cells join a group only when a true cell anchors it.
//   - Tiled maps: islands that continue across the map edge.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//
// Options:
//
//   - GridOptions.LandThreshold:   minimum value considered land.
//   - GridOptions.AnchorThreshold: minimum value an island must contain to be reported.
//   - GridOptions.Conn:            Conn4 (4-neighbours) or Conn8 (8-neighbours).
//   - GridOptions.Wrap:            toroidal adjacency.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
