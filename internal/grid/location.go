package grid

// Location identifies a square on the grid by its x,y coordinates.
// (0,0) is the top-left square; x grows to the right and y grows down.
type Location struct {
	X, Y int
}

// NoLocation is the sentinel for "no location". It marks the unknown end
// of an open-ended gap, among other things.
var NoLocation = Location{-1, -1}

// IsNone reports whether the location is the NoLocation sentinel.
func (l Location) IsNone() bool {
	return l.X < 0
}

// Manhattan returns the "taxicab" distance between two locations:
// abs(x2-x1) + abs(y2-y1).
func Manhattan(a, b Location) int {
	return abs(b.X-a.X) + abs(b.Y-a.Y)
}

// Chebyshev returns the "chessboard" distance between two locations:
// max(abs(x2-x1), abs(y2-y1)).
func Chebyshev(a, b Location) int {
	return max(abs(b.X-a.X), abs(b.Y-a.Y))
}

// Distance returns the adjacency distance between two locations:
// Manhattan when diagonal moves are disabled, Chebyshev when enabled.
// Two locations are neighbors iff their distance is exactly 1.
func Distance(a, b Location, diagonal bool) int {
	if diagonal {
		return Chebyshev(a, b)
	}
	return Manhattan(a, b)
}

// neighborOffsets lists neighbor offsets in the fixed enumeration order:
// N, E, S, W, then NE, SE, SW, NW. The first four are the orthogonal
// neighbors; the full eight apply when diagonal moves are enabled.
// Everything that enumerates neighbors (including the recursive solver)
// relies on this order being stable.
var neighborOffsets = [8]Location{
	{0, -1},  // N
	{1, 0},   // E
	{0, 1},   // S
	{-1, 0},  // W
	{1, -1},  // NE
	{1, 1},   // SE
	{-1, 1},  // SW
	{-1, -1}, // NW
}

// Neighbors returns the in-bounds neighbors of l on a w×h grid, in the
// fixed N, E, S, W, NE, SE, SW, NW order. There are between 2 and 8 of
// them depending on where l is and whether diagonals are considered.
func Neighbors(l Location, w, h int, diagonal bool) []Location {
	count := 4
	if diagonal {
		count = 8
	}
	ret := make([]Location, 0, count)
	for _, d := range neighborOffsets[:count] {
		n := Location{l.X + d.X, l.Y + d.Y}
		if n.X >= 0 && n.X < w && n.Y >= 0 && n.Y < h {
			ret = append(ret, n)
		}
	}
	return ret
}

// NeighborsExcept returns the in-bounds neighbors of l, minus the given
// neighbor. The order is the same as Neighbors.
func NeighborsExcept(l, except Location, w, h int, diagonal bool) []Location {
	ret := Neighbors(l, w, h, diagonal)
	for i, n := range ret {
		if n == except {
			return append(ret[:i], ret[i+1:]...)
		}
	}
	return ret
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
