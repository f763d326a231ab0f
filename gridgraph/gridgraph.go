package gridgraph

var (
	offsets4 = [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	offsets8 = [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		AnchorThreshold: opts.AnchorThreshold,
		Wrap:            opts.Wrap,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether the cell at (x,y) is land. Out-of-bounds cells are water.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// Neighbors returns the row-major indices adjacent to (x,y), in the order
// up, down, left, right (then diagonals under Conn8).
// With Wrap, coordinates are reduced modulo the grid size and repeated
// cells (axes of width 1 or 2, or the cell itself) are reported once.
// Without Wrap, out-of-bounds neighbours are omitted.
// Complexity: O(d).
func (gg *GridGraph) Neighbors(x, y int) []int {
	out := make([]int, 0, len(gg.neighborOffsets))
	self := gg.index(x, y)
	for _, d := range gg.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if gg.Wrap {
			nx, ny = mod(nx, gg.Width), mod(ny, gg.Height)
		} else if !gg.InBounds(nx, ny) {
			continue
		}
		ni := gg.index(nx, ny)
		if ni == self || contains(out, ni) {
			continue
		}
		out = append(out, ni)
	}

	return out
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Index is the exported form of the row-major mapping.
func (gg *GridGraph) Index(x, y int) int { return gg.index(x, y) }

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}

func contains(s []int, v int) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}

	return false
}
