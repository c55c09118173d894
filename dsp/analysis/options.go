package analysis

import (
	"github.com/cwbudde/algo-fourier/dsp/transform"
	"go.uber.org/zap"
)

// DefaultTerms is the number of components kept when WithTerms is not given.
const DefaultTerms = 6

type config struct {
	method      transform.Method
	engine      transform.Engine
	terms       int
	logger      *zap.Logger
	reconstruct bool
}

func defaultConfig() config {
	return config{
		method:      transform.MethodCooleyTukey,
		terms:       DefaultTerms,
		logger:      zap.NewNop(),
		reconstruct: true,
	}
}

// Option mutates analyzer configuration.
type Option func(*config)

// WithMethod selects the transform engine by registry method.
func WithMethod(m transform.Method) Option {
	return func(c *config) {
		c.method = m
		c.engine = nil
	}
}

// WithEngine uses e directly instead of a registry engine.
func WithEngine(e transform.Engine) Option {
	return func(c *config) {
		if e != nil {
			c.engine = e
		}
	}
}

// WithTerms sets how many components Analyze keeps. Values below 1 make
// Analyze fail with core.ErrInvalidSize.
func WithTerms(k int) Option {
	return func(c *config) {
		c.terms = k
	}
}

// WithLogger sets the logger for stage diagnostics. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithReconstruction enables or disables series reconstruction and the fit
// statistics that depend on it.
func WithReconstruction(enabled bool) Option {
	return func(c *config) {
		c.reconstruct = enabled
	}
}
