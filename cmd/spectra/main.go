// Command spectra extracts the dominant sinusoidal components of a sampled
// signal file and prints them as a table.
//
// Usage:
//
//	spectra [flags] file
//	spectra gen [flags] > file
//
// Files hold (seconds int32, nanoseconds int32, amplitude float64) records,
// either as 16-byte binary records (.dat, .bin) or CSV lines (.csv, .txt).
// A trailing .gz is decompressed transparently.
//
// Examples:
//
//	spectra signal.dat
//	spectra -method naive -terms 3 signal.csv
//	spectra -compare -order little signal.bin.gz
//	spectra -config spectra.yaml signal.dat
//	spectra gen -wave square -terms 5 > square.dat
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-fourier/dsp/analysis"
	"github.com/cwbudde/algo-fourier/dsp/record"
	"github.com/cwbudde/algo-fourier/dsp/samples"
	"github.com/cwbudde/algo-fourier/dsp/transform"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 && args[0] == "gen" {
		return runGen(args[1:], stdout, stderr)
	}
	return runAnalyze(args, stdout, stderr)
}

func runAnalyze(args []string, stdout, stderr io.Writer) error {
	def := DefaultConfig()
	var fl Config

	fs := flag.NewFlagSet("spectra", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&fl.Method, "method", def.Method, "transform engine (see -list)")
	fs.IntVar(&fl.Terms, "terms", def.Terms, "number of components to keep")
	fs.StringVar(&fl.Order, "order", def.Order, "binary byte order: big, little or auto (detect)")
	fs.StringVar(&fl.LogLevel, "log-level", def.LogLevel, "log level: debug, info, warn, error")
	fs.BoolVar(&fl.Series, "series", def.Series, "print the reconstructed series")
	fs.BoolVar(&fl.Compare, "compare", def.Compare, "cross-validate every transform engine")
	configPath := fs.String("config", "", "YAML config file; explicit flags override it")
	list := fs.Bool("list", false, "list transform engines")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: spectra [flags] file\n")
		fmt.Fprintf(stderr, "       spectra gen [flags] > file\n\n")
		fmt.Fprintf(stderr, "Extracts the dominant sinusoids of a sampled signal.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *list {
		for _, m := range transform.Methods() {
			fmt.Fprintln(stdout, m)
		}
		return nil
	}

	cfg := def
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	cfg.overlay(fs, fl)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one input file, got %d", fs.NArg())
	}
	path := fs.Arg(0)

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	order, _ := cfg.ByteOrder()
	method, _ := transform.ParseMethod(cfg.Method)

	var buf *samples.Buffer
	if order == nil {
		buf, err = record.LoadBufferDetect(path)
	} else {
		buf, err = record.LoadBuffer(path, order)
	}
	if err != nil {
		return err
	}
	logger.Info("signal loaded", zap.String("path", path), zap.Int("samples", buf.Len()))

	a, err := analysis.New(
		analysis.WithMethod(method),
		analysis.WithTerms(cfg.Terms),
		analysis.WithLogger(logger),
		analysis.WithReconstruction(true),
	)
	if err != nil {
		return err
	}

	res, err := a.Analyze(buf)
	if err != nil {
		return err
	}

	printResult(stdout, buf, res)

	if cfg.Series && res.Series != nil {
		fmt.Fprintln(stdout)
		printSeries(stdout, buf, res.Series)
	}

	if cfg.Compare {
		var others []transform.Method
		for _, m := range transform.Methods() {
			if m != method {
				others = append(others, m)
			}
		}
		cmp, err := a.CrossValidate(buf, others...)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout)
		printComparison(stdout, cmp)
	}

	return nil
}

func newLogger(cfg Config) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}

func printResult(w io.Writer, buf *samples.Buffer, res analysis.Result) {
	fmt.Fprintf(w, "Samples:   %d\n", buf.Len())
	fmt.Fprintf(w, "Transform: %s, n=%d, %v\n", res.Engine, res.N, res.Elapsed)
	if res.Interval != 0 {
		fmt.Fprintf(w, "Interval:  %g\n", res.Interval)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Rank\tBin\tMagnitude\tOmega (rad/s)\tFreq (Hz)\tPhase (rad)\t\n")
	fmt.Fprintf(tw, "----\t---\t---------\t-------------\t---------\t-----------\t\n")
	for i, c := range res.Components {
		omega, hz := c.AngularFrequency, c.AngularFrequency/(2*math.Pi)
		if res.Interval != 0 {
			omega, hz = c.Frequency(res.Interval), c.Hertz(res.Interval)
		}
		fmt.Fprintf(tw, "%d\t%d\t%.6g\t%.6g\t%.6g\t%.4f\t\n", i+1, c.Bin, c.Magnitude, omega, hz, c.Phase)
	}
	tw.Flush()

	if res.Series != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "RMS error: %.6g\n", res.Fit.RMSError)
		fmt.Fprintf(w, "Max error: %.6g at sample %d\n", res.Fit.MaxError, res.Fit.MaxErrorPos)
		fmt.Fprintf(w, "R²:        %.6f\n", res.Fit.R2)
		fmt.Fprintf(w, "SNR:       %.2f dB\n", res.Fit.SNR_dB)
	}
}

func printSeries(w io.Writer, buf *samples.Buffer, approx []float64) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Time\tOriginal\tApprox\t\n")
	for i, v := range approx {
		fmt.Fprintf(tw, "%.9g\t%.6g\t%.6g\t\n", buf.Time(i), buf.Value(i), v)
	}
	tw.Flush()
}

func printComparison(w io.Writer, cmp []analysis.Comparison) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Engine\tElapsed\tDeviation\t\n")
	fmt.Fprintf(tw, "------\t-------\t---------\t\n")
	for _, c := range cmp {
		fmt.Fprintf(tw, "%s\t%v\t%.3g\t\n", c.Engine, c.Elapsed, c.Deviation)
	}
	tw.Flush()
}
