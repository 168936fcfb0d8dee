package generator

import (
	"errors"
	"fmt"
	"time"

	"github.com/sbj42/hamilton/internal/grid"
	"github.com/sbj42/hamilton/internal/solver"
)

var (
	ErrInvalidSize = errors.New("invalid grid size")
)

// Options configures puzzle generation behavior.
type Options struct {
	Width, Height int               // grid dimensions
	Diagonal      bool              // can the path use diagonal segments
	KeepEnds      bool              // first and last clue stay
	Pattern       Pattern           // clue pattern
	Difficulty    solver.Difficulty // difficulty
	Seed          int64             // Seed for reproducible puzzles (0 = random)
	Timeout       time.Duration     // Timeout limits generation time
}

// DefaultOptions returns standard generator options: 7x7, symmetrical,
// easy.
func DefaultOptions() *Options {
	return &Options{
		Width:      7,
		Height:     7,
		Pattern:    PatternRot2,
		Difficulty: solver.Easy,
		Timeout:    30 * time.Second,
	}
}

// Validate checks the grid dimensions. Each side must be at least
// grid.MinSide and the area may not exceed grid.MaxNumber, since every
// cell holds a distinct number.
func (o *Options) Validate() error {
	if o.Width < grid.MinSide || o.Height < grid.MinSide {
		return fmt.Errorf("%w: both dimensions must be at least %d", ErrInvalidSize, grid.MinSide)
	}
	if o.Width*o.Height > grid.MaxNumber {
		return fmt.Errorf("%w: unable to support more than %d distinct numbers in a puzzle", ErrInvalidSize, grid.MaxNumber)
	}
	return nil
}
