package lut

import (
	"fmt"

	"github.com/banshee-data/lut2png/internal/monitoring"
)

// CountError reports a table with fewer entries than a full grid.
type CountError struct {
	Found    int
	Expected int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("found %d entries (expected %d)", e.Found, e.Expected)
}

// Validate checks the number of extracted triples against Expected.
// Too few is a *CountError. Too many is logged as a warning and the excess
// trailing entries are dropped.
func Validate(triples []Triple) ([]Triple, error) {
	n := len(triples)
	switch {
	case n < Expected:
		return nil, &CountError{Found: n, Expected: Expected}
	case n > Expected:
		monitoring.Warnf("%v.", &CountError{Found: n, Expected: Expected})
		return triples[:Expected], nil
	}
	return triples, nil
}

// Reshape lays triples out row-major: row y holds triples[y*Width : y*Width+Width].
// Cells beyond len(triples) stay zero; callers pass the output of Validate.
func Reshape(triples []Triple) Grid {
	var g Grid
	for i := 0; i < len(triples) && i < Expected; i++ {
		g[i/Width][i%Width] = triples[i]
	}
	return g
}

// Transpose swaps the row and column roles, exchanging the X and Y axes of
// the table.
func (g Grid) Transpose() Grid {
	var t Grid
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			t[x][y] = g[y][x]
		}
	}
	return t
}

// Channel returns every cell's component c in row-major order.
func (g *Grid) Channel(c int) []float64 {
	vals := make([]float64, 0, Expected)
	for y := range g {
		for x := range g[y] {
			vals = append(vals, g[y][x].Channel(c))
		}
	}
	return vals
}
