// Command lut2png converts a Vector3f LUT embedded in C++ source into a 32x32
// PNG, written to a file or printed as a base64 data URI.
//
// Usage:
//
//	lut2png [flags] <input.cpp | ->
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/banshee-data/lut2png/internal/config"
	"github.com/banshee-data/lut2png/internal/fsutil"
	"github.com/banshee-data/lut2png/internal/lut"
	"github.com/banshee-data/lut2png/internal/monitoring"
	"github.com/banshee-data/lut2png/internal/version"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// options are the resolved settings for one run.
type options struct {
	input   string
	lut     lut.Options
	format  lut.Format
	outfile string
	plot    string
	chart   string
}

// cliFlags holds the raw flag values before they are merged with a config file.
type cliFlags struct {
	mode       string
	output     string
	outfile    string
	swapXY     bool
	configPath string
	plot       string
	chart      string
	version    bool
}

func newFlagSet(stderr io.Writer) (*flag.FlagSet, *cliFlags) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("lut2png", flag.ContinueOnError)
	fs.SetOutput(stderr)

	modeHelp := "normalize = per-channel remap to full 0..255; clip = clamp to [0,1]"
	fs.StringVar(&f.mode, "mode", string(lut.ModeNormalize), modeHelp)
	fs.StringVar(&f.mode, "m", string(lut.ModeNormalize), "shorthand for -mode")
	outputHelp := "output format: base64 (print data URI) or png (write file)"
	fs.StringVar(&f.output, "output", string(lut.FormatBase64), outputHelp)
	fs.StringVar(&f.output, "o", string(lut.FormatBase64), "shorthand for -output")
	fs.StringVar(&f.outfile, "outfile", lut.DefaultOutfile, "output PNG filename (with -output png)")
	fs.BoolVar(&f.swapXY, "swapxy", false, "swap X and Y axes of the LUT (transpose image)")
	fs.StringVar(&f.configPath, "config", "", "optional JSON config file supplying defaults")
	fs.StringVar(&f.plot, "plot", "", "write a per-channel heat map PNG to this file")
	fs.StringVar(&f.chart, "chart", "", "write a per-channel HTML chart to this file")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: lut2png [flags] <input.cpp | ->\n\n")
		fs.PrintDefaults()
	}
	return fs, f
}

// resolve merges flags over config values. A flag only wins when it was set
// explicitly on the command line.
func resolve(fs *flag.FlagSet, f *cliFlags, cfg *config.Config, input string) (options, error) {
	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	pick := func(flagValue, cfgValue string, names ...string) string {
		for _, n := range names {
			if set[n] {
				return flagValue
			}
		}
		return cfgValue
	}

	var o options
	var err error
	if o.lut.Mode, err = lut.ParseMode(pick(f.mode, cfg.GetMode(), "mode", "m")); err != nil {
		return o, err
	}
	if o.format, err = lut.ParseFormat(pick(f.output, cfg.GetOutput(), "output", "o")); err != nil {
		return o, err
	}
	o.outfile = pick(f.outfile, cfg.GetOutfile(), "outfile")
	if o.outfile == "" {
		return o, errors.New("outfile must not be empty")
	}
	o.lut.SwapXY = cfg.GetSwapXY()
	if set["swapxy"] {
		o.lut.SwapXY = f.swapXY
	}
	o.plot = pick(f.plot, cfg.GetPlot(), "plot")
	o.chart = pick(f.chart, cfg.GetChart(), "chart")
	o.input = input
	return o, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, fsutil.OSFileSystem{}))
}

// parseArgs parses flags anywhere on the command line, so both
// "lut2png -m clip in.cpp" and "lut2png in.cpp -m clip" work. Positional
// arguments are returned in order. A lone "-" is a positional, and
// everything after "--" is taken verbatim.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		if len(args) > len(rest) && args[len(args)-len(rest)-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// run executes one conversion and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, fsys fsutil.FileSystem) int {
	monitoring.SetLogger(monitoring.NewLogger(stderr))

	fs, f := newFlagSet(stderr)
	inputs, err := parseArgs(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if f.version {
		fmt.Fprintln(stdout, version.String())
		return exitOK
	}

	if len(inputs) != 1 {
		fmt.Fprintln(stderr, "lut2png: expected exactly one input (a file path or - for stdin)")
		fs.Usage()
		return exitUsage
	}

	cfg := config.EmptyConfig()
	if f.configPath != "" {
		if cfg, err = config.LoadConfig(fsys, f.configPath); err != nil {
			fmt.Fprintf(stderr, "lut2png: %v\n", err)
			return exitError
		}
	}

	opts, err := resolve(fs, f, cfg, inputs[0])
	if err != nil {
		fmt.Fprintf(stderr, "lut2png: %v\n", err)
		return exitUsage
	}

	if err := convert(opts, stdin, stdout, fsys); err != nil {
		var countErr *lut.CountError
		if errors.As(err, &countErr) {
			monitoring.Warnf("%v.", countErr)
		} else {
			fmt.Fprintf(stderr, "lut2png: %v\n", err)
		}
		return exitError
	}
	return exitOK
}

func convert(opts options, stdin io.Reader, stdout io.Writer, fsys fsutil.FileSystem) error {
	src, err := fsutil.ReadSource(fsys, opts.input, stdin)
	if err != nil {
		return err
	}

	res, err := lut.Convert(src, opts.lut)
	if err != nil {
		return err
	}

	emitter := &lut.Emitter{FS: fsys, Out: stdout}
	if err := emitter.Emit(res, opts.format, opts.outfile); err != nil {
		return err
	}

	if opts.plot != "" {
		if err := writePreview(fsys, opts.plot, func(w io.Writer) error {
			return lut.RenderPlot(w, &res.Pixels, string(res.Mode))
		}); err != nil {
			return err
		}
		monitoring.Logf("wrote plot %s", opts.plot)
	}
	if opts.chart != "" {
		if err := writePreview(fsys, opts.chart, func(w io.Writer) error {
			return lut.RenderChart(w, &res.Pixels, string(res.Mode))
		}); err != nil {
			return err
		}
		monitoring.Logf("wrote chart %s", opts.chart)
	}
	return nil
}

func writePreview(fsys fsutil.FileSystem, name string, render func(io.Writer) error) error {
	w, err := fsys.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	if err := render(w); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	return nil
}
