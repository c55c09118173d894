package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/cwbudde/algo-fourier/dsp/record"
	"github.com/cwbudde/algo-fourier/dsp/signal"
)

var waves = map[string]func(terms int, period float64) []signal.Term{
	"square":   signal.SquareWave,
	"triangle": signal.TriangleWave,
	"sawtooth": signal.SawtoothWave,
	"cosine": func(_ int, period float64) []signal.Term {
		return []signal.Term{{Amplitude: 1, Omega: 2 * math.Pi / period}}
	},
}

func waveNames() []string {
	names := make([]string, 0, len(waves))
	for n := range waves {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func runGen(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("spectra gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	wave := fs.String("wave", "square", "waveform: "+strings.Join(waveNames(), ", "))
	terms := fs.Int("terms", 5, "number of series terms")
	period := fs.Float64("period", 2, "period parameter of the term table")
	duration := fs.Float64("duration", 10, "end time; samples span [0, duration]")
	n := fs.Int("samples", 1000, "number of samples")
	bias := fs.Float64("bias", 0, "constant offset added to the signal")
	noise := fs.Float64("noise", 0, "peak uniform noise level")
	seed := fs.Int64("seed", 1, "noise seed")
	format := fs.String("format", "binary", "output format: binary or csv")
	orderName := fs.String("order", "big", "binary byte order: big or little")
	epoch := fs.Int("epoch", 0, "seconds value of t = 0")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: spectra gen [flags] > file\n\n")
		fmt.Fprintf(stderr, "Writes a synthetic Fourier-series signal as records to stdout.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	build, ok := waves[strings.ToLower(*wave)]
	if !ok {
		return fmt.Errorf("unknown wave %q (want %s)", *wave, strings.Join(waveNames(), ", "))
	}
	if *period <= 0 {
		return fmt.Errorf("period must be > 0: %g", *period)
	}

	var f record.Format
	switch strings.ToLower(*format) {
	case "binary", "bin":
		f = record.FormatBinary
	case "csv":
		f = record.FormatCSV
	default:
		return fmt.Errorf("unknown format %q (want binary or csv)", *format)
	}

	order, err := parseOrder(*orderName, false)
	if err != nil {
		return err
	}

	series := build(*terms, *period)
	if *bias != 0 {
		series = append([]signal.Term{signal.Bias(*bias)}, series...)
	}

	g := signal.NewGenerator(signal.WithSeed(*seed), signal.WithNoise(*noise))
	times, _, values, err := g.Generate(series, *duration, *n)
	if err != nil {
		return err
	}

	recs, err := record.FromSamples(times, values, int32(*epoch))
	if err != nil {
		return err
	}

	enc, err := record.NewEncoder(f, order)
	if err != nil {
		return err
	}
	return enc.Encode(stdout, recs)
}
