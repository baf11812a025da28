package lut

// Options is the conversion configuration, fixed for a whole run.
type Options struct {
	Mode   Mode
	SwapXY bool
}

// DefaultOptions returns normalize mode without transposition.
func DefaultOptions() Options {
	return Options{Mode: ModeNormalize}
}

// Result carries every intermediate of a conversion.
type Result struct {
	Options

	// Count is the number of triples extracted, before truncation.
	Count  int
	Grid   Grid
	Ranges Ranges
	Pixels PixelGrid
	PNG    []byte
}

// Convert runs the full pipeline over C++ source text. A table with fewer
// than Expected entries returns a *CountError.
func Convert(text string, opts Options) (*Result, error) {
	if _, err := ParseMode(string(opts.Mode)); err != nil {
		return nil, err
	}

	triples := Extract(text)
	res := &Result{Options: opts, Count: len(triples)}

	valid, err := Validate(triples)
	if err != nil {
		return nil, err
	}

	res.Grid = Reshape(valid)
	if opts.SwapXY {
		res.Grid = res.Grid.Transpose()
	}

	res.Ranges = res.Grid.Ranges()
	if res.Pixels, err = Map(&res.Grid, opts.Mode, res.Ranges); err != nil {
		return nil, err
	}
	if res.PNG, err = EncodePNG(&res.Pixels); err != nil {
		return nil, err
	}
	return res, nil
}
