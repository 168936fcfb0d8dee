package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidDesc = errors.New("invalid puzzle description")
)

// Parse creates a Grid from a puzzle description string. The description
// is a comma-separated list of w*h cell values in row-major order, where
// an empty field means an empty cell. For example, this 4x4 puzzle:
//
//	 .  .  4  3
//	 .  .  .  .
//	 .  7  .  9
//	 .  .  .  .
//
// is described by ",,4,3,,,,,,7,,9,,,,".
func Parse(desc string, w, h int) (*Grid, error) {
	area := w * h
	fields := strings.Split(desc, ",")
	if len(fields) != area {
		return nil, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidDesc, len(fields), area)
	}

	g := New(w, h)
	for i, field := range fields {
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: bad cell %q at index %d", ErrInvalidDesc, field, i)
		}
		if n < 1 || n > area {
			return nil, fmt.Errorf("%w: number %d at index %d out of range 1-%d", ErrInvalidDesc, n, i, area)
		}
		g.Set(i%w, i/w, n)
	}
	return g, nil
}

// String returns the grid as a puzzle description string, the inverse of
// Parse.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(3 * g.Area())

	for i, n := range g.cells {
		if i > 0 {
			sb.WriteByte(',')
		}
		if n != EmptyCell {
			sb.WriteString(strconv.Itoa(n))
		}
	}

	return sb.String()
}

// Format returns a human-readable grid representation. Each cell takes
// two characters, right-aligned; empty cells show as ".".
func (g *Grid) Format() string {
	var sb strings.Builder
	sb.Grow(3 * g.Area())

	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			n := g.At(x, y)
			if n == EmptyCell {
				sb.WriteString(" .")
			} else {
				if n <= 9 {
					sb.WriteByte(' ')
				} else {
					sb.WriteByte('0' + byte(n/10))
				}
				sb.WriteByte('0' + byte(n%10))
			}
			if x < g.w-1 {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('\n')
			}
		}
	}

	return sb.String()
}
