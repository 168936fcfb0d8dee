package solver

import (
	"fmt"
	"strings"
)

// Difficulty selects which parts of the solver are enabled.
type Difficulty int

const (
	// Easy means the solution must be obtainable using only moves deemed
	// necessary, with no guess-work.
	Easy Difficulty = iota
	// Hard means the solver may make guesses and see which possibilities
	// work and which don't.
	Hard
)

// String returns the lower-case name of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// ParseDifficulty converts a difficulty name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return Easy, nil
	case "hard":
		return Hard, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// Options configures solver behavior.
type Options struct {
	// Diagonal allows the path to use diagonal segments.
	Diagonal bool

	// MaxGapLength is a convenience setting for the puzzle generator:
	// the solver gives up early if the puzzle has a gap longer than
	// this, even if it is solvable. -1 accepts any gap length.
	MaxGapLength int

	// MaxDifficulty set to Easy disables the recursive trial-and-error
	// mode, so only necessary moves are played.
	MaxDifficulty Difficulty

	// StepLimit bounds how many nodes the recursion tree may have, which
	// limits how much work is put into finding the solution. A value
	// of 0 or less means no limit.
	StepLimit int

	// UniqueOnly makes the solver keep looking after finding a solution,
	// to see if there is more than one. If multiple solutions are found,
	// or the step limit expires before uniqueness is settled, the solver
	// reports failure.
	UniqueOnly bool
}

// DefaultOptions returns solver options with no limits: orthogonal
// adjacency, recursion allowed, any gap length, unbounded search.
func DefaultOptions() *Options {
	return &Options{
		MaxGapLength:  -1,
		MaxDifficulty: Hard,
		StepLimit:     -1,
	}
}
