package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, down, left, right.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals to Conn4.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
	// AnchorThreshold is the minimum value at least one cell of an island
	// must reach for the island to be reported. Values ≤ LandThreshold keep
	// every island.
	AnchorThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Wrap joins opposite edges so the grid behaves as a torus.
	Wrap bool
}

// DefaultGridOptions returns planar settings: values ≥1 are land, every
// island is reported, Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold:   1,
		AnchorThreshold: 1,
		Conn:            Conn4,
	}
}

// TorusOptions returns the settings used for K-maps: values ≥1 are land,
// islands must contain a value ≥2, Conn4, wrap-around enabled.
func TorusOptions() GridOptions {
	return GridOptions{
		LandThreshold:   1,
		AnchorThreshold: 2,
		Conn:            Conn4,
		Wrap:            true,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the input value.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	LandThreshold   int
	AnchorThreshold int
	Wrap            bool
	neighborOffsets [][2]int
}
