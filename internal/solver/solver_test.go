package solver

import (
	"errors"
	"testing"

	"github.com/sbj42/hamilton/internal/grid"
)

// checkSolution verifies that sol is a complete Hamiltonian numbering of
// the grid that agrees with the clues of puzzle.
func checkSolution(t *testing.T, sol, puzzle *grid.Grid, diagonal bool) {
	t.Helper()
	w, h, area := sol.Width(), sol.Height(), sol.Area()

	locs := make([]grid.Location, area+1)
	for i := range locs {
		locs[i] = grid.NoLocation
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := sol.At(x, y)
			if n < 1 || n > area {
				t.Fatalf("cell (%d,%d) = %d, want 1..%d", x, y, n, area)
			}
			if !locs[n].IsNone() {
				t.Fatalf("number %d appears twice", n)
			}
			locs[n] = grid.Location{X: x, Y: y}
			if clue := puzzle.At(x, y); clue != grid.EmptyCell && clue != n {
				t.Fatalf("clue %d at (%d,%d) was changed to %d", clue, x, y, n)
			}
		}
	}
	for n := 2; n <= area; n++ {
		if grid.Distance(locs[n-1], locs[n], diagonal) != 1 {
			t.Fatalf("numbers %d at %v and %d at %v are not adjacent",
				n-1, locs[n-1], n, locs[n])
		}
	}
}

func TestSolveEasy(t *testing.T) {
	//  .  .  4  3
	//  .  .  .  .
	//  .  7  .  9
	//  .  .  .  .
	puzzle := mustParse(t, ",,4,3,,,,,,7,,9,,,,", 4, 4)
	sol, err := Solve(puzzle, &Options{MaxGapLength: -1, MaxDifficulty: Easy})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	want := mustParse(t, "16,5,4,3,15,6,1,2,14,7,8,9,13,12,11,10", 4, 4)
	if !sol.Equal(want) {
		t.Errorf("Solve returned:\n%s\nwant:\n%s", sol.Format(), want.Format())
	}
	checkSolution(t, sol, puzzle, false)

	// The puzzle grid itself must not have been touched.
	if puzzle.ClueCount() != 4 {
		t.Error("Solve modified the input grid")
	}
}

func TestStraightPathRule(t *testing.T) {
	// 10  .  .  7
	//  . 12  .  .
	// 16  .  2  .
	//  . 14  .  .
	//
	// The gaps 7..10 and 12..14 admit only straight corridors, so the
	// deductive rules must fill them without recursion.
	g := mustParse(t, "10,,,7,,12,,,16,,2,,,14,,", 4, 4)
	s, _ := newState(g, false, -1)
	if !s.necessaryMoves() {
		t.Fatal("necessaryMoves reported a contradiction")
	}
	checks := []struct {
		x, y, n int
	}{
		{2, 0, 8},
		{1, 0, 9},
		{1, 2, 13},
	}
	for _, c := range checks {
		if got := s.grid.At(c.x, c.y); got != c.n {
			t.Errorf("cell (%d,%d) = %d, want %d", c.x, c.y, got, c.n)
		}
	}
}

func TestStraightPathDiagonal(t *testing.T) {
	// 1 at (0,0) and 4 at (3,3) on a 4x4 diagonal-mode grid: the gap can
	// only be completed along the main diagonal.
	g := grid.New(4, 4)
	g.Set(0, 0, 1)
	g.Set(3, 3, 4)
	g.Set(3, 0, 16) // extra clue so the high end is anchored too
	s, _ := newState(g, true, -1)
	if res := s.straightPath(0); res != moved {
		t.Fatalf("straightPath = %v, want moved", res)
	}
	if s.grid.At(1, 1) != 2 || s.grid.At(2, 2) != 3 {
		t.Errorf("diagonal corridor not filled: (1,1)=%d (2,2)=%d",
			s.grid.At(1, 1), s.grid.At(2, 2))
	}
}

func TestSolveRejectsMultipleSolutions(t *testing.T) {
	// A 4x4 grid with only the clue 1 has many solutions.
	g := grid.New(4, 4)
	g.Set(0, 0, 1)
	_, err := Solve(g, &Options{
		MaxGapLength:  -1,
		MaxDifficulty: Hard,
		StepLimit:     -1,
		UniqueOnly:    true,
	})
	if !errors.Is(err, ErrMultipleSolutions) {
		t.Errorf("Solve error = %v, want ErrMultipleSolutions", err)
	}
}

func TestSolveOpenEndedGap(t *testing.T) {
	// 3x3 with 5 in the center and 1 at top-left. The gap from 1 to 5 is
	// closed; the gap above 5 is open-ended.
	g := mustParse(t, "1,,,,5,,,,", 3, 3)
	sol, err := Solve(g, &Options{MaxGapLength: -1, MaxDifficulty: Hard, StepLimit: -1})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	checkSolution(t, sol, g, false)
}

func TestSolveDeterministic(t *testing.T) {
	g := mustParse(t, ",,4,3,,,,,,7,,9,,,,", 4, 4)
	opts := &Options{MaxGapLength: -1, MaxDifficulty: Hard, StepLimit: -1, UniqueOnly: true}
	sol1, err := Solve(g, opts)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	sol2, err := Solve(g, opts)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !sol1.Equal(sol2) {
		t.Error("two solves of the same puzzle disagree")
	}

	// Solving the returned solution gives it right back.
	sol3, err := Solve(sol1, opts)
	if err != nil {
		t.Fatalf("Solve of solution failed: %v", err)
	}
	if !sol3.Equal(sol1) {
		t.Error("solving a completed grid changed it")
	}
}

func TestSolveStepLimit(t *testing.T) {
	g := grid.New(4, 4)
	g.Set(0, 0, 1)
	_, err := Solve(g, &Options{
		MaxGapLength:  -1,
		MaxDifficulty: Hard,
		StepLimit:     1,
		UniqueOnly:    true,
	})
	if !errors.Is(err, ErrStepLimit) {
		t.Errorf("Solve error = %v, want ErrStepLimit", err)
	}
}

func TestSolveGapTooLong(t *testing.T) {
	g := grid.New(4, 4)
	g.Set(0, 0, 1)
	g.Set(3, 3, 16)
	_, err := Solve(g, &Options{
		MaxGapLength:  9,
		MaxDifficulty: Hard,
		StepLimit:     -1,
	})
	if !errors.Is(err, ErrGapTooLong) {
		t.Errorf("Solve error = %v, want ErrGapTooLong", err)
	}
}

func TestSolveNoSolution(t *testing.T) {
	// 1 at (0,0) and 3 at (2,2): only one number is missing between
	// them but the locations are 4 apart, so the gap is unsatisfiable.
	g := grid.New(3, 3)
	g.Set(0, 0, 1)
	g.Set(2, 2, 3)
	if _, err := Solve(g, DefaultOptions()); !errors.Is(err, ErrNoSolution) {
		t.Errorf("Solve error = %v, want ErrNoSolution", err)
	}
}

func TestGapOrdering(t *testing.T) {
	// Closed gaps sort by endpoint distance ascending; open-ended gaps
	// collate last.
	g := mustParse(t, ",5,4,,,,,,14,,,9,13,12,11,", 4, 4)
	s, _ := newState(g, false, -1)
	s.sortGaps()
	if len(s.gaps) != 4 {
		t.Fatalf("got %d gaps, want 4", len(s.gaps))
	}
	for i := 1; i < len(s.gaps); i++ {
		if s.gapDistance(s.gaps[i-1]) > s.gapDistance(s.gaps[i]) {
			t.Errorf("gaps out of order: %v before %v", s.gaps[i-1], s.gaps[i])
		}
	}
	if !s.gaps[len(s.gaps)-1].L2.IsNone() && !s.gaps[len(s.gaps)-1].L1.IsNone() {
		t.Error("open-ended gap did not collate last")
	}
}
