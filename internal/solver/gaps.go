package solver

import (
	"github.com/sbj42/hamilton/internal/grid"
)

// Gap represents a run of missing numbers bracketed by numbers present on
// the grid. N1/L1 are the number and location just before the run, N2/L2
// just after it; the missing numbers are exactly N1+1 .. N2-1.
//
// A gap at either end of the sequence is "open-ended": if the run extends
// down to 1 then N1 is 0 and L1 is NoLocation, and if it extends up to
// the area then N2 is area+1 and L2 is NoLocation.
//
// For instance, given this grid:
//
//	 .  5  4  3
//	 .  .  1  2
//	14  .  .  9
//	13 12 11 10
//
// there are two gaps:
//
//	{N1: 5, L1: (1,0), N2: 9, L2: (3,2)}
//	{N1: 14, L1: (0,2), N2: 17, L2: NoLocation}
type Gap struct {
	N1, N2 int
	L1, L2 grid.Location
}

// Length returns the number of missing numbers in the gap.
func (g Gap) Length() int {
	return g.N2 - g.N1 - 1
}

// numberMap computes a map from numbers to their locations on the grid.
// The returned slice has length area+1 so it can be indexed by number
// directly; absent numbers (and index 0) map to NoLocation.
func numberMap(g *grid.Grid) []grid.Location {
	m := make([]grid.Location, g.Area()+1)
	for i := range m {
		m[i] = grid.NoLocation
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if n := g.At(x, y); n > 0 {
				m[n] = grid.Location{X: x, Y: y}
			}
		}
	}
	return m
}

// ComputeGaps finds the gaps (runs of missing numbers) in the given grid,
// in ascending order of N1, along with the length of the longest gap.
// The longest-gap length is useful for limiting the computational
// complexity of a generated puzzle.
//
// The grid must contain at least one number; ComputeGaps panics on an
// entirely empty grid.
//
// For instance, given this grid:
//
//	 .  5  4  .
//	 .  .  .  .
//	14  .  .  9
//	13 12 11  .
//
// the missing numbers are 1-3, 6-8, 10, and 15-16, so the gaps are:
//
//	{N1: 0, L1: NoLocation, N2: 4, L2: (2,0)}
//	{N1: 5, L1: (1,0), N2: 9, L2: (3,2)}
//	{N1: 9, L1: (3,2), N2: 11, L2: (2,3)}
//	{N1: 14, L1: (0,2), N2: 17, L2: NoLocation}
//
// and the longest gap length is 3.
func ComputeGaps(g *grid.Grid) ([]Gap, int) {
	area := g.Area()
	m := numberMap(g)

	first := 1
	for first <= area && m[first].IsNone() {
		first++
	}
	if first > area {
		panic("solver: grid has no numbers")
	}
	last := area
	for m[last].IsNone() {
		last--
	}

	var gaps []Gap
	longest := 0

	if first != 1 {
		gaps = append(gaps, Gap{N1: 0, L1: grid.NoLocation, N2: first, L2: m[first]})
		longest = first - 1
	}

	for i := first; i <= last; i++ {
		if m[i].IsNone() {
			continue
		}
		// A present number after an absent one closes the current gap.
		if i > first && m[i-1].IsNone() {
			gap := &gaps[len(gaps)-1]
			gap.N2 = i
			gap.L2 = m[i]
			longest = max(longest, gap.Length())
		}
		// A present number before an absent one opens the next gap.
		if i < last && m[i+1].IsNone() {
			gaps = append(gaps, Gap{N1: i, L1: m[i], N2: 0, L2: grid.NoLocation})
		}
	}

	if last != area {
		gaps = append(gaps, Gap{N1: last, L1: m[last], N2: area + 1, L2: grid.NoLocation})
		longest = max(longest, area-last)
	}

	return gaps, longest
}
