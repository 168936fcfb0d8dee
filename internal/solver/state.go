package solver

import (
	"sort"

	"github.com/sbj42/hamilton/internal/grid"
)

// state holds everything one solving attempt works on. Each speculative
// branch of the recursive solver owns its own clone; states are never
// shared.
type state struct {
	w, h      int
	diagonal  bool
	stepLimit int
	grid      *grid.Grid
	gaps      []Gap
}

// newState builds a solver state from a puzzle grid. It also returns the
// length of the longest gap, for the generator's complexity prefilter.
func newState(g *grid.Grid, diagonal bool, stepLimit int) (*state, int) {
	gaps, longest := ComputeGaps(g)
	return &state{
		w:         g.Width(),
		h:         g.Height(),
		diagonal:  diagonal,
		stepLimit: stepLimit,
		grid:      g.Clone(),
		gaps:      gaps,
	}, longest
}

// clone creates an independent copy of the state.
func (s *state) clone() *state {
	c := *s
	c.grid = s.grid.Clone()
	c.gaps = append([]Gap(nil), s.gaps...)
	return &c
}

// removeGap deletes the gap at the given index, preserving order.
func (s *state) removeGap(i int) {
	s.gaps = append(s.gaps[:i], s.gaps[i+1:]...)
}

// gapDistance is the sort key for the recursive solver's gap ordering:
// the adjacency distance between a gap's endpoints. Gaps with an unknown
// endpoint collate after all closed gaps.
func (s *state) gapDistance(g Gap) int {
	if g.L1.IsNone() || g.L2.IsNone() {
		return grid.MaxNumber + 1
	}
	return grid.Distance(g.L1, g.L2, s.diagonal)
}

// sortGaps orders the gaps by endpoint distance, ascending. Short gaps
// constrain more tightly and branch less, so the recursive solver tries
// them first. The sort is stable so the search order stays deterministic.
func (s *state) sortGaps() {
	sort.SliceStable(s.gaps, func(i, j int) bool {
		return s.gapDistance(s.gaps[i]) < s.gapDistance(s.gaps[j])
	})
}

// placeLow places the next number at the low end of the gap at gapIndex,
// at the given location. Returns false if that makes the puzzle
// unsolvable. If the placement completes the gap, the gap is removed;
// otherwise its low end advances.
func (s *state) placeLow(gapIndex int, l grid.Location) bool {
	gap := &s.gaps[gapIndex]
	n := gap.N1 + 1

	// Too far away from the other end of the gap to ever reach it.
	if !gap.L2.IsNone() && grid.Distance(l, gap.L2, s.diagonal) > gap.Length() {
		return false
	}

	s.grid.SetLoc(l, n)

	if s.blockedNumbersNearby(l) {
		return false
	}

	if n+1 == gap.N2 {
		s.removeGap(gapIndex)
	} else {
		gap.N1 = n
		gap.L1 = l
	}
	return true
}

// placeHigh places the previous number at the high end of the gap at
// gapIndex, at the given location. The mirror image of placeLow.
func (s *state) placeHigh(gapIndex int, l grid.Location) bool {
	gap := &s.gaps[gapIndex]
	n := gap.N2 - 1

	if !gap.L1.IsNone() && grid.Distance(l, gap.L1, s.diagonal) > gap.Length() {
		return false
	}

	s.grid.SetLoc(l, n)

	if s.blockedNumbersNearby(l) {
		return false
	}

	if n-1 == gap.N1 {
		s.removeGap(gapIndex)
	} else {
		gap.N2 = n
		gap.L2 = l
	}
	return true
}

// blockedNumber reports whether the number at location c has too few
// available squares around it. A square is available if it is empty or
// holds the number's predecessor or successor. The first and last numbers
// of the path are the ends of the completed path and need to connect to
// only one available square; all others need two.
//
// For example, in the following grid (with no diagonal moves):
//
//	16 15  .  .
//	11  .  .  .
//	 .  7  6  .
//	 .  .  .  .
//
// placing an 8 above the 7 would leave the 11, which still needs two
// connections, with only one available square.
func (s *state) blockedNumber(c grid.Location) bool {
	n := s.grid.AtLoc(c)
	available := 0
	for _, nb := range grid.Neighbors(c, s.w, s.h, s.diagonal) {
		o := s.grid.AtLoc(nb)
		if o == grid.EmptyCell || o == n-1 || o == n+1 {
			available++
		}
	}
	required := 2
	if n == 1 || n == s.grid.Area() {
		required = 1
	}
	return available < required
}

// blockedNumbersNearby reports whether a number just placed at location l
// has taken away a needed square from a clue adjacent to it.
//
// Only the L2 endpoint of each gap is checked: a clue with gaps on both
// sides is always the L2 of one of them. This also probes endpoints whose
// number has a neighbor on one side already; for those the successor
// being present and adjacent counts toward the availability total, so the
// check stays sound and never claims a solvable puzzle unsolvable.
func (s *state) blockedNumbersNearby(l grid.Location) bool {
	for _, gap := range s.gaps {
		if gap.L2.IsNone() {
			continue
		}
		if grid.Distance(gap.L2, l, s.diagonal) == 1 && s.blockedNumber(gap.L2) {
			return true
		}
	}
	return false
}
