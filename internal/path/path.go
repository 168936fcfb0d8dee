// Package path builds random Hamiltonian paths on rectangular grids.
//
// The method is to start with a basic winding path and then shuffle it
// for a while with "backbite" moves, which keep the path Hamiltonian.
// The approach is described in 'Secondary Structures in Long Compact
// Polymers' (https://arxiv.org/abs/cond-mat/0508094).
package path

import (
	"math/rand"

	"github.com/sbj42/hamilton/internal/grid"
)

// ShuffleFactor scales how much shuffling Random does. Random applies
// 2 * ShuffleFactor * area backbite operations.
const ShuffleFactor = 5

// Path is an ordered sequence of locations covering the grid, where
// consecutive entries are adjacent.
type Path []grid.Location

// Simple constructs a winding (boustrophedon) Hamiltonian path on a w×h
// grid: row 0 left-to-right, row 1 right-to-left, and so on. The path
// starts at (0,0).
func Simple(w, h int) Path {
	p := make(Path, 0, w*h)
	for y := 0; y < h; y++ {
		if y%2 == 0 {
			for x := 0; x < w; x++ {
				p = append(p, grid.Location{X: x, Y: y})
			}
		} else {
			for x := w - 1; x >= 0; x-- {
				p = append(p, grid.Location{X: x, Y: y})
			}
		}
	}
	return p
}

// Random constructs a random Hamiltonian path on a w×h grid.
//
// Starting from a simple path, each shuffle step takes the path's first
// location, picks a random neighbor of it other than the second location,
// and reverses the path prefix up to (but not including) that neighbor.
// The neighbor was adjacent to the first location before the reversal, so
// consecutive path entries remain adjacent afterward.
//
// Suppose we start with:
//
//	1  2  3  4
//	8  7  6  5
//	9 10 11 12
//
// The end of the path labeled "1" has "8" as its only unconnected
// neighbor. Reversing the prefix "1".."7" gives:
//
//	7  6  5  4
//	8  1  2  3
//	9 10 11 12
//
// Now "1" has "6", "8", and "10" as candidates, and so on.
//
// Because the shuffle is a random walk from one end, the far end can stay
// stuck in a corner. To agitate both ends, the whole path is reversed
// once, halfway through the shuffle budget.
func Random(rng *rand.Rand, w, h int, diagonal bool) Path {
	area := w * h
	p := Simple(w, h)

	for i := 0; i < 2*ShuffleFactor*area; i++ {
		if i == ShuffleFactor*area {
			p.reverse(area)
		}

		neighbors := grid.NeighborsExcept(p[0], p[1], w, h, diagonal)
		q := neighbors[rng.Intn(len(neighbors))]
		p.reverse(p.indexOf(q))
	}

	return p
}

// ToGrid renders the path as a full grid, where the path's i-th location
// holds the number i+1.
func (p Path) ToGrid(w, h int) *grid.Grid {
	g := grid.New(w, h)
	for i, l := range p {
		g.SetLoc(l, i+1)
	}
	return g
}

// reverse reverses the first n entries of the path.
func (p Path) reverse(n int) {
	for a, b := 0, n-1; a < b; a, b = a+1, b-1 {
		p[a], p[b] = p[b], p[a]
	}
}

// indexOf returns the index of the given location in the path.
// The location must be on the path.
func (p Path) indexOf(l grid.Location) int {
	for i, e := range p {
		if e == l {
			return i
		}
	}
	panic("location not on path")
}
