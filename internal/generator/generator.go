// Package generator creates Hamilton number-path puzzles.
//
// Generation starts with a random Hamiltonian path, which becomes the
// solution to the puzzle. Clues are then removed from the rendered grid,
// in random order or by a fixed pattern mask, while the solver confirms
// at every step that the puzzle still has exactly one solution.
package generator

import (
	"errors"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sbj42/hamilton/internal/grid"
	"github.com/sbj42/hamilton/internal/path"
	"github.com/sbj42/hamilton/internal/solver"
)

// MaxGapLength caps the gap length of generated puzzles, which keeps the
// recursive depth of the verifying solver in check. The border pattern
// widens this, since it cannot help leaving long gaps.
const MaxGapLength = 9

var (
	ErrGenerationFailed = errors.New("failed to generate valid puzzle")
)

var log = logrus.StandardLogger()

// Generator creates puzzles.
type Generator struct {
	options *Options
	rng     *rand.Rand
}

// New creates a puzzle generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions()
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// stepLimit returns the solver effort budget for the verification solves.
// Diagonal puzzles take more time to solve, so their limits are smaller
// to keep generation from taking too long. The values are tuned
// empirically; the outer restart loop compensates when a low budget
// rejects a workable grid.
func (g *Generator) stepLimit() int {
	o := g.options
	if o.Diagonal {
		switch o.Pattern {
		case PatternRing:
			return 1000
		case PatternBorder:
			return 100
		}
		return 80000
	}
	switch o.Pattern {
	case PatternNone:
		return 300000
	case PatternRot2:
		return 800000
	}
	return -1
}

// Generate creates a new puzzle. It returns the puzzle grid (0 meaning
// no clue) and the completed solution grid, or an error if no acceptable
// puzzle appears within the configured timeout.
func (g *Generator) Generate() (puzzle *grid.Grid, solution *grid.Grid, err error) {
	o := g.options
	if err := o.Validate(); err != nil {
		return nil, nil, err
	}

	start := time.Now()
	attempt := 0
	for {
		if o.Timeout > 0 && time.Since(start) >= o.Timeout {
			return nil, nil, ErrGenerationFailed
		}
		attempt++

		p := path.Random(g.rng, o.Width, o.Height, o.Diagonal)
		solution = p.ToGrid(o.Width, o.Height)

		switch o.Pattern {
		case PatternRing:
			puzzle = g.tryMask(solution, ringMask, o.Difficulty, MaxGapLength)
		case PatternBorder:
			// The border pattern leaves gaps about as long as the grid
			// side, and needs guess-work to solve at all.
			maxGap := max(o.Width, o.Height)
			if o.Difficulty == solver.Hard {
				maxGap += 4
			}
			puzzle = g.tryMask(solution, borderMask, solver.Hard, maxGap)
		default:
			puzzle = g.removeClues(p, solution)
		}

		if puzzle != nil {
			log.WithFields(logrus.Fields{
				"attempts": attempt,
				"clues":    puzzle.ClueCount(),
				"pattern":  o.Pattern,
			}).Debug("generated puzzle")
			return puzzle, solution, nil
		}
		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"pattern": o.Pattern,
		}).Debug("attempt not uniquely solvable, retrying")
	}
}

// ringMask reports whether a cell is on the rectangular ring one square
// away from the border.
func ringMask(x, y, w, h int) bool {
	if x == 0 || x == w-1 || y == 0 || y == h-1 {
		return false
	}
	return x == 1 || x == w-2 || y == 1 || y == h-2
}

// borderMask reports whether a cell is an every-other border square.
func borderMask(x, y, w, h int) bool {
	if x != 0 && x != w-1 && y != 0 && y != h-1 {
		return false
	}
	return (x+y)%2 == 0
}

// tryMask blanks every solution cell the mask excludes and verifies that
// the remaining clues form a uniquely solvable puzzle. Returns nil when
// they don't, in which case the caller starts over with a fresh path.
func (g *Generator) tryMask(solution *grid.Grid, mask func(x, y, w, h int) bool,
	difficulty solver.Difficulty, maxGap int) *grid.Grid {
	o := g.options
	puzzle := solution.Clone()
	for y := 0; y < o.Height; y++ {
		for x := 0; x < o.Width; x++ {
			if !mask(x, y, o.Width, o.Height) {
				puzzle.Set(x, y, grid.EmptyCell)
			}
		}
	}

	if _, err := solver.Solve(puzzle, &solver.Options{
		Diagonal:      o.Diagonal,
		MaxGapLength:  maxGap,
		MaxDifficulty: difficulty,
		StepLimit:     g.stepLimit(),
		UniqueOnly:    true,
	}); err != nil {
		return nil
	}
	return puzzle
}

// removeClues digs clues out of a full solution grid one at a time, in
// random order, keeping each removal only if the puzzle still has a
// unique solution. For the rot2 pattern, clues are removed in
// rotationally symmetric pairs, so only the first half of the grid is
// considered.
func (g *Generator) removeClues(p path.Path, solution *grid.Grid) *grid.Grid {
	o := g.options
	w, h, area := o.Width, o.Height, solution.Area()
	puzzle := solution.Clone()

	solveOpts := &solver.Options{
		Diagonal:      o.Diagonal,
		MaxGapLength:  MaxGapLength,
		MaxDifficulty: o.Difficulty,
		StepLimit:     g.stepLimit(),
		UniqueOnly:    true,
	}

	// A shuffled list of clue numbers to try removing. The path gives
	// each number's location.
	clues := make([]int, area)
	for i := range clues {
		clues[i] = solution.At(i%w, i/w)
	}
	count := area
	if o.Pattern == PatternRot2 {
		// Only the clues in the first half of the grid; each removal
		// takes its mirror along with it.
		count = (area + 1) / 2
	}
	g.rng.Shuffle(count, func(i, j int) {
		clues[i], clues[j] = clues[j], clues[i]
	})

	for _, clue := range clues[:count] {
		l := p[clue-1]

		if o.KeepEnds && (clue == 1 || clue == area) {
			continue
		}

		mirror := grid.Location{X: w - 1 - l.X, Y: h - 1 - l.Y}
		mirrorClue := 0
		if o.Pattern == PatternRot2 {
			mirrorClue = puzzle.AtLoc(mirror)
			if o.KeepEnds && (mirrorClue == 1 || mirrorClue == area) {
				continue
			}
			puzzle.SetLoc(mirror, grid.EmptyCell)
		}

		puzzle.SetLoc(l, grid.EmptyCell)

		if _, err := solver.Solve(puzzle, solveOpts); err != nil {
			// Not uniquely solvable without it; put the clue back.
			puzzle.SetLoc(l, clue)
			if o.Pattern == PatternRot2 {
				puzzle.SetLoc(mirror, mirrorClue)
			}
		} else {
			log.WithFields(logrus.Fields{
				"clue": clue,
				"x":    l.X,
				"y":    l.Y,
			}).Debug("removed clue")
		}
	}

	return puzzle
}
