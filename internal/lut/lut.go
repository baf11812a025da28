// Package lut converts a Vector3f lookup table embedded in C++ source into a
// 32x32 RGB raster.
//
// The conversion is a linear pipeline: Extract pulls numeric triples out of
// the text, Validate and Reshape lay them out as a Grid, Map turns the grid
// into bytes under a Mode, and EncodePNG produces the image. Convert runs the
// whole pipeline.
package lut

// Grid dimensions. Only 32x32 tables are supported.
const (
	Width    = 32
	Height   = 32
	Expected = Width * Height
)

// channelNames labels the three components when they are treated as colour.
var channelNames = [3]string{"R", "G", "B"}

// Triple is one LUT cell. Components are unbounded.
type Triple struct {
	X, Y, Z float64
}

// Channel returns component c: 0 is X (red), 1 is Y (green), 2 is Z (blue).
func (t Triple) Channel(c int) float64 {
	switch c {
	case 0:
		return t.X
	case 1:
		return t.Y
	default:
		return t.Z
	}
}

// Grid is the LUT laid out row-major and indexed [row][col], where row is
// the Y axis and col is the X axis.
type Grid [Height][Width]Triple

// PixelGrid holds the mapped bytes with the same indexing as Grid.
type PixelGrid [Height][Width][3]uint8
