package lut

import (
	"errors"
	"fmt"
	"io"

	"github.com/banshee-data/lut2png/internal/fsutil"
)

// Format selects where the PNG goes.
type Format string

const (
	// FormatBase64 prints a summary and a data URI to the output writer.
	FormatBase64 Format = "base64"
	// FormatPNG writes the PNG bytes to a file.
	FormatPNG Format = "png"
)

// DefaultOutfile is the PNG file name used when none is configured.
const DefaultOutfile = "ltc_sheen_lut.png"

// ErrUnknownFormat is returned for an output format other than base64 or png.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat converts a command-line or config value into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatBase64, FormatPNG:
		return f, nil
	}
	return "", fmt.Errorf("%w %q (want %s or %s)", ErrUnknownFormat, s, FormatBase64, FormatPNG)
}

// Emitter delivers a Result either as a file on FS or as text on Out.
type Emitter struct {
	FS  fsutil.FileSystem
	Out io.Writer
}

// Emit writes res in the given format. outfile is only used by FormatPNG.
func (e *Emitter) Emit(res *Result, format Format, outfile string) error {
	switch format {
	case FormatPNG:
		return e.WriteFile(res, outfile)
	case FormatBase64:
		return e.WriteInline(res)
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, format)
}

// WriteFile stores the PNG under name and reports it on Out.
func (e *Emitter) WriteFile(res *Result, name string) error {
	if err := e.FS.WriteFile(name, res.PNG, 0644); err != nil {
		return fmt.Errorf("failed to write PNG: %w", err)
	}
	_, err := fmt.Fprintf(e.Out, "✓ Wrote PNG: %s (%dx%d)\n", name, Width, Height)
	return err
}

// WriteInline prints the mode, channel ranges, transpose flag, a blank line
// and the data URI. Ranges are reported even in clip mode.
func (e *Emitter) WriteInline(res *Result) error {
	w := &errWriter{w: e.Out}
	w.printf("# Mode: %s\n", res.Mode)
	for c, r := range res.Ranges {
		w.printf("# %s range: %.6g–%.6g\n", channelNames[c], r.Min, r.Max)
	}
	w.printf("# SwapXY: %t\n", res.SwapXY)
	w.printf("\n%s\n", DataURI(res.PNG))
	return w.err
}

// errWriter keeps the first write error so a run of printf calls can be
// checked once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, v ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, v...)
}
