package solver

import (
	"reflect"
	"testing"

	"github.com/sbj42/hamilton/internal/grid"
)

func mustParse(t *testing.T, desc string, w, h int) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(desc, w, h)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", desc, err)
	}
	return g
}

func TestComputeGaps(t *testing.T) {
	//  .  5  4  .
	//  .  .  .  .
	// 14  .  .  9
	// 13 12 11  .
	g := mustParse(t, ",5,4,,,,,,14,,,9,13,12,11,", 4, 4)
	gaps, longest := ComputeGaps(g)
	want := []Gap{
		{N1: 0, L1: grid.NoLocation, N2: 4, L2: grid.Location{X: 2, Y: 0}},
		{N1: 5, L1: grid.Location{X: 1, Y: 0}, N2: 9, L2: grid.Location{X: 3, Y: 2}},
		{N1: 9, L1: grid.Location{X: 3, Y: 2}, N2: 11, L2: grid.Location{X: 2, Y: 3}},
		{N1: 14, L1: grid.Location{X: 0, Y: 2}, N2: 17, L2: grid.NoLocation},
	}
	if !reflect.DeepEqual(gaps, want) {
		t.Errorf("ComputeGaps = %v, want %v", gaps, want)
	}
	if longest != 3 {
		t.Errorf("longest = %d, want 3", longest)
	}
}

func TestComputeGapsInvariants(t *testing.T) {
	descs := []struct {
		desc string
		w, h int
	}{
		{",,4,3,,,,,,7,,9,,,,", 4, 4},
		{"1,,,,5,,,,", 3, 3},
		{",5,4,,,,,,14,,,9,13,12,11,", 4, 4},
		{"5,,,,,,,,", 3, 3},
	}
	for _, tt := range descs {
		g := mustParse(t, tt.desc, tt.w, tt.h)
		area := tt.w * tt.h
		gaps, longest := ComputeGaps(g)

		missing := make(map[int]bool)
		maxLen := 0
		for _, gap := range gaps {
			if gap.N1 >= gap.N2 {
				t.Errorf("%q: gap %v has N1 >= N2", tt.desc, gap)
			}
			maxLen = max(maxLen, gap.Length())
			for n := gap.N1 + 1; n < gap.N2; n++ {
				if missing[n] {
					t.Errorf("%q: number %d missing in two gaps", tt.desc, n)
				}
				missing[n] = true
			}
			if !gap.L1.IsNone() && g.AtLoc(gap.L1) != gap.N1 {
				t.Errorf("%q: gap %v L1 does not hold N1", tt.desc, gap)
			}
			if !gap.L2.IsNone() && g.AtLoc(gap.L2) != gap.N2 {
				t.Errorf("%q: gap %v L2 does not hold N2", tt.desc, gap)
			}
		}
		if maxLen != longest {
			t.Errorf("%q: longest = %d, want %d", tt.desc, longest, maxLen)
		}

		// Missing numbers plus present numbers must cover 1..area.
		for n := 1; n <= area; n++ {
			present := false
			for y := 0; y < tt.h; y++ {
				for x := 0; x < tt.w; x++ {
					if g.At(x, y) == n {
						present = true
					}
				}
			}
			if present == missing[n] {
				t.Errorf("%q: number %d present=%v missing=%v", tt.desc, n, present, missing[n])
			}
		}
	}
}

func TestComputeGapsFullGrid(t *testing.T) {
	g := mustParse(t, "1,2,3,6,5,4,7,8,9", 3, 3)
	gaps, longest := ComputeGaps(g)
	if len(gaps) != 0 || longest != 0 {
		t.Errorf("ComputeGaps on full grid = %v, %d; want no gaps", gaps, longest)
	}
}

func TestComputeGapsEmptyGridPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ComputeGaps on empty grid did not panic")
		}
	}()
	ComputeGaps(grid.New(3, 3))
}
