package solver

import (
	"github.com/sbj42/hamilton/internal/grid"
)

// moveResult is the three-valued outcome of trying one deductive rule on
// one gap.
type moveResult int

const (
	unsolvable moveResult = iota // a necessary move was found but it makes the puzzle unsolvable
	moved                        // a necessary move was found and performed, gaps are updated
	didntMove                    // no necessary move was found
)

// findOnlyMove looks for the single empty square adjacent to l, if there
// is exactly one. The number at l is one end of a gap, so at least one
// square around it must receive a number; if only one square is
// available, the number must go there.
//
// For example, in the following grid (with no diagonal moves):
//
//	 .  5  4  3
//	 .  .  1  2
//	14  .  8  9
//	 . 12 11  .
//
// the square left of the "8" and the square below the "9" are both
// necessary moves.
func (s *state) findOnlyMove(l grid.Location) (grid.Location, bool) {
	found := grid.NoLocation
	for _, nb := range grid.Neighbors(l, s.w, s.h, s.diagonal) {
		if s.grid.AtLoc(nb) != grid.EmptyCell {
			continue
		}
		if !found.IsNone() {
			return grid.NoLocation, false // more than one available square
		}
		found = nb
	}
	return found, !found.IsNone()
}

// onlyMove looks at the ends of the gap at gapIndex to see if either side
// has a necessary move due to there being only one available square. If
// so, it places the necessary number, updates the gap, and checks whether
// the puzzle has been made unsolvable.
func (s *state) onlyMove(gapIndex int) moveResult {
	gap := s.gaps[gapIndex]
	if !gap.L1.IsNone() {
		if l, ok := s.findOnlyMove(gap.L1); ok {
			if s.placeLow(gapIndex, l) {
				return moved
			}
			return unsolvable
		}
	}
	if !gap.L2.IsNone() {
		if l, ok := s.findOnlyMove(gap.L2); ok {
			if s.placeHigh(gapIndex, l) {
				return moved
			}
			return unsolvable
		}
	}
	return didntMove
}

// straightPath looks for gaps whose end locations are so far apart, and
// whose end numbers so close together, that only a direct line from one
// to the other can complete the gap. If so, it places all the missing
// numbers and removes the gap.
//
// For example, in the following grid (with no diagonal moves):
//
//	10  .  .  7
//	 . 12  .  .
//	16  .  2  .
//	 . 14  .  .
//
// the gap from "7" to "10" and the gap from "12" to "14" can only be
// completed by straight corridors.
//
// Open-ended gaps are skipped; both end locations must be known.
func (s *state) straightPath(gapIndex int) moveResult {
	gap := s.gaps[gapIndex]
	if gap.L1.IsNone() || gap.L2.IsNone() {
		return didntMove
	}

	dx := gap.L2.X - gap.L1.X
	dy := gap.L2.Y - gap.L1.Y
	var sx, sy int
	if s.diagonal {
		if dx != dy && dx != -dy {
			return didntMove
		}
		if gap.N2-gap.N1 != abs(dx) {
			return didntMove
		}
		sx, sy = sign(dx), sign(dy)
	} else {
		switch {
		case dx == 0:
			if gap.N2-gap.N1 != abs(dy) {
				return didntMove
			}
			sx, sy = 0, sign(dy)
		case dy == 0:
			if gap.N2-gap.N1 != abs(dx) {
				return didntMove
			}
			sx, sy = sign(dx), 0
		default:
			return didntMove
		}
	}

	l := gap.L1
	for n := gap.N1 + 1; n < gap.N2; n++ {
		l.X += sx
		l.Y += sy
		// A number already in the corridor means the path cannot get
		// from one end of the gap to the other.
		if s.grid.AtLoc(l) != grid.EmptyCell {
			return unsolvable
		}
		s.grid.SetLoc(l, n)
		if s.blockedNumbersNearby(l) {
			return unsolvable
		}
	}
	s.removeGap(gapIndex)
	return moved
}

// necessaryMoves plays moves that can be determined necessary, until it
// can prove the puzzle unsolvable (returning false) or until no more
// necessary moves exist (returning true). Whenever a rule fires the gap
// index steps back so neighboring gaps whose surroundings changed get
// rechecked.
//
// Returning true does not by itself mean the puzzle is solvable, but if
// no gaps remain afterward, the puzzle has been solved.
func (s *state) necessaryMoves() bool {
	for {
		changed := false
		for g := 0; g < len(s.gaps); g++ {
			switch s.straightPath(g) {
			case unsolvable:
				return false
			case moved:
				changed = true
				g--
				continue
			}
			switch s.onlyMove(g) {
			case unsolvable:
				return false
			case moved:
				changed = true
				g--
				continue
			}
		}
		if !changed {
			return true
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	return -1
}
