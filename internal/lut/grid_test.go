package lut

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/banshee-data/lut2png/internal/monitoring"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequence returns n triples whose components encode their index.
func sequence(n int) []Triple {
	out := make([]Triple, n)
	for i := range out {
		out[i] = Triple{X: float64(i), Y: float64(i) / 10, Z: -float64(i)}
	}
	return out
}

// captureLog redirects monitoring.Logf for the duration of the test.
func captureLog(t *testing.T) *[]string {
	t.Helper()
	prev := monitoring.Logf
	t.Cleanup(func() { monitoring.Logf = prev })

	var lines []string
	monitoring.SetLogger(func(format string, v ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, v...))
	})
	return &lines
}

func TestValidate_Insufficient(t *testing.T) {
	logged := captureLog(t)

	got, err := Validate(sequence(1000))
	require.Error(t, err)
	assert.Nil(t, got)

	var countErr *CountError
	require.True(t, errors.As(err, &countErr))
	assert.Equal(t, 1000, countErr.Found)
	assert.Equal(t, 1024, countErr.Expected)
	assert.Contains(t, err.Error(), "1000")
	assert.Contains(t, err.Error(), "1024")
	assert.Empty(t, *logged, "the caller reports insufficient data")
}

func TestValidate_Exact(t *testing.T) {
	logged := captureLog(t)

	in := sequence(Expected)
	got, err := Validate(in)
	require.NoError(t, err)
	assert.Len(t, got, Expected)
	assert.Empty(t, *logged)
}

func TestValidate_ExcessTruncates(t *testing.T) {
	logged := captureLog(t)

	in := sequence(1030)
	got, err := Validate(in)
	require.NoError(t, err)
	require.Len(t, got, Expected)
	if diff := cmp.Diff(in[:Expected], got); diff != "" {
		t.Errorf("truncated entries mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, *logged, 1)
	warning := (*logged)[0]
	assert.True(t, strings.HasPrefix(warning, "Warning: "), "warning = %q", warning)
	assert.Contains(t, warning, "1030")
	assert.Contains(t, warning, "1024")
}

func TestReshape_RowMajor(t *testing.T) {
	in := sequence(Expected)
	g := Reshape(in)

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if g[y][x] != in[y*Width+x] {
				t.Fatalf("g[%d][%d] = %+v, want %+v", y, x, g[y][x], in[y*Width+x])
			}
		}
	}
}

func TestReshape_ShortInputLeavesZeros(t *testing.T) {
	g := Reshape(sequence(Width + 1))

	assert.Equal(t, Triple{X: 32, Y: 3.2, Z: -32}, g[1][0])
	assert.Equal(t, Triple{}, g[1][1])
	assert.Equal(t, Triple{}, g[Height-1][Width-1])
}

func TestTranspose(t *testing.T) {
	g := Reshape(sequence(Expected))
	tr := g.Transpose()

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if tr[x][y] != g[y][x] {
				t.Fatalf("transpose[%d][%d] = %+v, want %+v", x, y, tr[x][y], g[y][x])
			}
		}
	}
	assert.NotEqual(t, g, tr, "a non-symmetric grid must change")
}

func TestTranspose_Twice(t *testing.T) {
	g := Reshape(sequence(Expected))

	if diff := cmp.Diff(g, g.Transpose().Transpose()); diff != "" {
		t.Errorf("double transpose mismatch (-want +got):\n%s", diff)
	}
}

func TestGridChannel(t *testing.T) {
	g := Reshape(sequence(Expected))

	for c, want := range []func(i int) float64{
		func(i int) float64 { return float64(i) },
		func(i int) float64 { return float64(i) / 10 },
		func(i int) float64 { return -float64(i) },
	} {
		vals := g.Channel(c)
		require.Len(t, vals, Expected)
		for i, v := range vals {
			if v != want(i) {
				t.Fatalf("channel %d[%d] = %v, want %v", c, i, v, want(i))
			}
		}
	}
}
