package lut

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

// DataURIPrefix starts every inline PNG.
const DataURIPrefix = "data:image/png;base64,"

// Image returns p as an opaque image where pixel (x, y) is p[y][x].
func (p *PixelGrid) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	for y := range p {
		for x, px := range p[y] {
			img.SetRGBA(x, y, color.RGBA{R: px[0], G: px[1], B: px[2], A: 0xff})
		}
	}
	return img
}

// EncodePNG encodes p as an 8-bit truecolour PNG. The image is opaque, so
// image/png writes it without an alpha channel.
func EncodePNG(p *PixelGrid) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, p.Image()); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURI wraps PNG bytes as a base64 data URI.
func DataURI(pngBytes []byte) string {
	return DataURIPrefix + base64.StdEncoding.EncodeToString(pngBytes)
}
