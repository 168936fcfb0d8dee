// Package solver solves Hamilton number-path puzzles.
//
// The solver works on the gaps between the numbers present on the grid.
// It first plays moves it can deem necessary with a few simple rules and
// no guess-work; when no necessary moves remain it falls back to a
// recursive trial-and-error search. The search also looks for a second
// solution, which the generator uses to ensure that generated puzzles
// have only one.
package solver

import (
	"errors"

	"github.com/sbj42/hamilton/internal/grid"
)

var (
	ErrNoSolution        = errors.New("puzzle has no solution")
	ErrMultipleSolutions = errors.New("puzzle has multiple solutions")
	ErrGapTooLong        = errors.New("puzzle has a gap longer than the limit")
	ErrStepLimit         = errors.New("solver step limit exceeded")
)

// search carries the shared results of one recursive solve: the first
// solution found, whether a second one exists, and the step budget.
type search struct {
	solution *grid.Grid
	multiple *bool // nil when the caller doesn't care about uniqueness
	steps    int
	aborted  bool
}

// recursiveSolve tries to finish the puzzle in state s. It first plays
// the necessary moves; if gaps remain it picks the first gap's anchored
// end and tries every empty neighbor of it, cloning the state for each
// attempt. Neighbors are tried in the fixed order documented on
// grid.Neighbors, so the search is deterministic.
//
// The return value means "the search is finished": a contradiction in
// this branch returns false to keep searching elsewhere, and so does a
// recorded first solution when the caller wants to check uniqueness.
func (s *state) recursiveSolve(sr *search) bool {
	if !s.necessaryMoves() {
		return false
	}

	if s.stepLimit > 0 {
		sr.steps++
		if sr.steps > s.stepLimit {
			sr.aborted = true
			return true
		}
	}

	if len(s.gaps) == 0 {
		if sr.solution != nil {
			*sr.multiple = true
			return true
		}
		sr.solution = s.grid.Clone()
		// Keep searching for a second solution if the caller asked.
		return sr.multiple == nil
	}

	gap := s.gaps[0]
	anchor := gap.L1
	low := true
	if anchor.IsNone() {
		anchor = gap.L2
		low = false
	}

	for _, nb := range grid.Neighbors(anchor, s.w, s.h, s.diagonal) {
		if s.grid.AtLoc(nb) != grid.EmptyCell {
			continue
		}
		next := s.clone()
		ok := false
		if low {
			ok = next.placeLow(0, nb)
		} else {
			ok = next.placeHigh(0, nb)
		}
		if ok && next.recursiveSolve(sr) {
			return true
		}
	}
	return false
}

// Solve tries to find a solution for the given puzzle grid. On success
// it returns a new, completed grid. Otherwise it returns one of:
//
//   - ErrGapTooLong: a gap exceeds opts.MaxGapLength.
//   - ErrMultipleSolutions: opts.UniqueOnly was set and a second
//     solution was found.
//   - ErrStepLimit: the step budget expired. With opts.UniqueOnly this
//     is reported even if a solution was found first, because the
//     search cannot prove it unique.
//   - ErrNoSolution: the search was exhausted without a solution, or
//     opts.MaxDifficulty is Easy and necessary moves alone don't finish
//     the puzzle.
//
// The input grid is not modified.
func Solve(g *grid.Grid, opts *Options) (*grid.Grid, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	s, longest := newState(g, opts.Diagonal, opts.StepLimit)
	if opts.MaxGapLength > 0 && longest > opts.MaxGapLength {
		return nil, ErrGapTooLong
	}

	if opts.MaxDifficulty == Easy {
		if s.necessaryMoves() && len(s.gaps) == 0 {
			return s.grid, nil
		}
		return nil, ErrNoSolution
	}

	// Try short gaps first, they branch less.
	s.sortGaps()

	sr := &search{}
	var multiple bool
	if opts.UniqueOnly {
		sr.multiple = &multiple
	}
	s.recursiveSolve(sr)

	switch {
	case multiple:
		return nil, ErrMultipleSolutions
	case sr.aborted && (opts.UniqueOnly || sr.solution == nil):
		return nil, ErrStepLimit
	case sr.solution != nil:
		return sr.solution, nil
	default:
		return nil, ErrNoSolution
	}
}
