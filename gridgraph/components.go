package gridgraph

// ConnectedComponents finds all contiguous regions ("islands") of land cells
// (CellValues[y][x] ≥ LandThreshold) under gg.Conn, wrapping at the edges
// when gg.Wrap is set. Islands with no cell ≥ AnchorThreshold are explored
// but not returned.
//
// Seeds are taken in row-major order. Each island is listed in depth-first
// pre-order with neighbours tried up, down, left, right, matching a
// recursive walk. The walk keeps its own stack, so depth is bounded by the
// heap rather than the goroutine stack.
//
// Every land cell is visited exactly once, so the islands are disjoint and,
// together with the dropped ones, partition the land.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags, stack and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.index(x, y)
			if seen[i0] || !gg.IsLand(x, y) {
				continue
			}
			comp, anchored := gg.walk(i0, seen)
			if anchored {
				comps = append(comps, comp)
			}
		}
	}

	return comps
}

// walk collects the island reachable from start, marking cells in seen.
// It reports whether any collected cell reaches AnchorThreshold.
func (gg *GridGraph) walk(start int, seen []bool) (comp []int, anchored bool) {
	stack := []int{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[u] {
			continue
		}
		seen[u] = true
		comp = append(comp, u)

		ux, uy := gg.Coordinate(u)
		if gg.CellValues[uy][ux] >= gg.AnchorThreshold {
			anchored = true
		}
		// push in reverse so the first neighbour is explored first
		nbs := gg.Neighbors(ux, uy)
		for k := len(nbs) - 1; k >= 0; k-- {
			v := nbs[k]
			vx, vy := gg.Coordinate(v)
			if !seen[v] && gg.IsLand(vx, vy) {
				stack = append(stack, v)
			}
		}
	}

	return comp, anchored
}
