package lut

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Mode selects how cell values become bytes.
type Mode string

const (
	// ModeNormalize stretches each channel's observed range to 0..255.
	ModeNormalize Mode = "normalize"
	// ModeClip treats values as already in [0,1] and clamps the rest.
	ModeClip Mode = "clip"
)

// ErrUnknownMode is returned for a mode other than normalize or clip.
var ErrUnknownMode = errors.New("unknown mode")

// ParseMode converts a command-line or config value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeNormalize, ModeClip:
		return m, nil
	}
	return "", fmt.Errorf("%w %q (want %s or %s)", ErrUnknownMode, s, ModeNormalize, ModeClip)
}

// ChannelRange is the observed minimum and maximum of one channel.
type ChannelRange struct {
	Min, Max float64
}

// Degenerate reports whether the channel has no usable spread.
func (r ChannelRange) Degenerate() bool {
	return r.Max <= r.Min
}

// Ranges holds the R, G and B channel ranges.
type Ranges [3]ChannelRange

// Ranges computes each channel's range across the whole grid.
func (g *Grid) Ranges() Ranges {
	var r Ranges
	for c := range r {
		vals := g.Channel(c)
		r[c] = ChannelRange{Min: floats.Min(vals), Max: floats.Max(vals)}
	}
	return r
}

// Map converts every cell of g to bytes. Normalize mode rescales each
// channel independently using r; a degenerate channel maps to 0 everywhere.
// Clip mode ignores r. Rounding is half away from zero.
func Map(g *Grid, mode Mode, r Ranges) (PixelGrid, error) {
	var p PixelGrid
	var conv func(v float64, c int) uint8
	switch mode {
	case ModeNormalize:
		conv = func(v float64, c int) uint8 { return normalizeByte(v, r[c]) }
	case ModeClip:
		conv = func(v float64, _ int) uint8 { return unitByte(v) }
	default:
		return p, fmt.Errorf("%w %q", ErrUnknownMode, mode)
	}

	for y := range g {
		for x := range g[y] {
			for c := 0; c < 3; c++ {
				p[y][x][c] = conv(g[y][x].Channel(c), c)
			}
		}
	}
	return p, nil
}

func normalizeByte(v float64, r ChannelRange) uint8 {
	if r.Degenerate() {
		return 0
	}
	return unitByte((v - r.Min) / (r.Max - r.Min))
}

// unitByte scales a [0,1] value to 0..255. NaN maps to 255, so an infinite
// cell that normalizes to Inf/Inf lands on the top of the range.
func unitByte(v float64) uint8 {
	return uint8(math.Round(255 * clamp01(v)))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1, math.IsNaN(v):
		return 1
	}
	return v
}
