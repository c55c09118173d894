package analysis

import (
	"fmt"
	"math"
	"math/cmplx"
	"time"

	"github.com/cwbudde/algo-fourier/dsp/core"
	"github.com/cwbudde/algo-fourier/dsp/samples"
	"github.com/cwbudde/algo-fourier/dsp/series"
	"github.com/cwbudde/algo-fourier/dsp/spectrum"
	"github.com/cwbudde/algo-fourier/dsp/transform"
	"github.com/cwbudde/algo-fourier/stats/fit"
	"go.uber.org/zap"
)

// Analyzer extracts dominant sinusoids from sample buffers.
// It holds no per-call state and may be reused.
type Analyzer struct {
	cfg config
}

// Result is the outcome of one Analyze call.
type Result struct {
	// N is the transform size, the largest power of two <= buffer length.
	N int
	// Engine is the registry name of the engine that produced the bins.
	Engine string
	// Elapsed is the transform phase wall time.
	Elapsed time.Duration
	// Interval is the sampling interval t[1]-t[0]; zero for a single sample
	// or, without reconstruction, when t[1] equals t[0].
	Interval float64
	// Components are the dominant components, strongest first.
	Components []spectrum.Component
	// Series is the reconstruction over all buffer timestamps; nil when
	// reconstruction is disabled or the buffer has one sample.
	Series []float64
	// Fit compares the buffer amplitudes with Series.
	Fit fit.Stats
}

// New creates an Analyzer.
func New(opts ...Option) (*Analyzer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.engine == nil {
		e, err := transform.New(cfg.method)
		if err != nil {
			return nil, fmt.Errorf("analysis: %w", err)
		}
		cfg.engine = e
	}

	return &Analyzer{cfg: cfg}, nil
}

// Engine returns the configured transform engine.
func (a *Analyzer) Engine() transform.Engine { return a.cfg.engine }

// Terms returns the configured component count.
func (a *Analyzer) Terms() int { return a.cfg.terms }

// Analyze runs the full pipeline on buf.
func (a *Analyzer) Analyze(buf *samples.Buffer) (Result, error) {
	if buf == nil {
		return Result{}, fmt.Errorf("analysis: nil sample buffer: %w", core.ErrValidation)
	}
	log := a.cfg.logger

	n := core.LargestPowerOfTwo(buf.Len())
	log.Debug("transform size chosen",
		zap.Int("samples", buf.Len()),
		zap.Int("n", n),
		zap.Int("discarded", buf.Len()-n))

	spec, err := transform.Compute(a.cfg.engine, buf, n)
	if err != nil {
		return Result{}, fmt.Errorf("analysis: %w", err)
	}
	log.Debug("transform complete",
		zap.String("engine", spec.Engine),
		zap.Int("n", n),
		zap.Duration("elapsed", spec.Elapsed))

	comps, err := spectrum.Top(spec.Bins, a.cfg.terms)
	if err != nil {
		return Result{}, fmt.Errorf("analysis: %w", err)
	}
	log.Debug("components extracted",
		zap.Int("requested", a.cfg.terms),
		zap.Int("kept", len(comps)))

	res := Result{
		N:          n,
		Engine:     spec.Engine,
		Elapsed:    spec.Elapsed,
		Components: comps,
	}

	if buf.Len() < 2 {
		log.Debug("single sample, skipping reconstruction")
		return res, nil
	}

	if !a.cfg.reconstruct {
		// Components do not depend on the interval; report it when usable.
		if dt, err := buf.Interval(); err == nil {
			res.Interval = dt
		}
		return res, nil
	}

	res.Interval, err = buf.Interval()
	if err != nil {
		return Result{}, fmt.Errorf("analysis: %w", err)
	}

	res.Series, err = series.Reconstruct(buf.Times(), res.Interval, comps)
	if err != nil {
		return Result{}, fmt.Errorf("analysis: %w", err)
	}

	res.Fit, err = fit.Compare(buf.Values(), res.Series)
	if err != nil {
		return Result{}, fmt.Errorf("analysis: %w", err)
	}
	log.Debug("reconstruction complete",
		zap.Float64("rms_error", res.Fit.RMSError),
		zap.Float64("snr_db", res.Fit.SNR_dB))

	return res, nil
}

// Comparison reports how one engine's spectrum deviates from the analyzer's
// engine on the same prefix.
type Comparison struct {
	Engine  string
	Elapsed time.Duration
	// Deviation is max|X_e[k] - X_ref[k]| / max(1, max|X_ref[k]|).
	Deviation float64
}

// CrossValidate transforms the power-of-two prefix of buf with the
// analyzer's engine and with every engine in methods, and reports each
// engine's deviation from the analyzer's result. The analyzer's own engine
// is listed first with zero deviation.
func (a *Analyzer) CrossValidate(buf *samples.Buffer, methods ...transform.Method) ([]Comparison, error) {
	if buf == nil {
		return nil, fmt.Errorf("analysis: nil sample buffer: %w", core.ErrValidation)
	}

	n := core.LargestPowerOfTwo(buf.Len())
	ref, err := transform.Compute(a.cfg.engine, buf, n)
	if err != nil {
		return nil, fmt.Errorf("analysis: %w", err)
	}

	scale := 1.0
	for _, b := range ref.Bins {
		scale = math.Max(scale, cmplx.Abs(b))
	}

	out := make([]Comparison, 0, len(methods)+1)
	out = append(out, Comparison{Engine: ref.Engine, Elapsed: ref.Elapsed})

	for _, m := range methods {
		e, err := transform.New(m)
		if err != nil {
			return nil, fmt.Errorf("analysis: %w", err)
		}

		spec, err := transform.Compute(e, buf, n)
		if err != nil {
			return nil, fmt.Errorf("analysis: %w", err)
		}

		dev := 0.0
		for k := range spec.Bins {
			dev = math.Max(dev, cmplx.Abs(spec.Bins[k]-ref.Bins[k]))
		}

		c := Comparison{Engine: spec.Engine, Elapsed: spec.Elapsed, Deviation: dev / scale}
		a.cfg.logger.Debug("engine compared",
			zap.String("engine", c.Engine),
			zap.Duration("elapsed", c.Elapsed),
			zap.Float64("deviation", c.Deviation))
		out = append(out, c)
	}

	return out, nil
}
