package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-fourier/dsp/analysis"
	"github.com/cwbudde/algo-fourier/dsp/transform"
)

// Config holds analysis settings. It can be loaded from YAML; flags given
// explicitly on the command line take precedence over the file.
type Config struct {
	Method   string `yaml:"method"`
	Terms    int    `yaml:"terms"`
	Order    string `yaml:"order"`     // big (default), little or auto
	LogLevel string `yaml:"log_level"` // zap level name
	Series   bool   `yaml:"series"`    // print the reconstructed series
	Compare  bool   `yaml:"compare"`   // cross-validate every engine
}

// DefaultConfig returns the settings used when neither file nor flag sets
// a value.
func DefaultConfig() Config {
	return Config{
		Method:   transform.MethodCooleyTukey.String(),
		Terms:    analysis.DefaultTerms,
		Order:    "big",
		LogLevel: "warn",
	}
}

// LoadConfig loads configuration from a YAML file. Keys missing from the
// file keep their defaults.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filename, err)
	}
	return &config, nil
}

// Validate checks that every field names something known.
func (c Config) Validate() error {
	if _, err := transform.ParseMethod(c.Method); err != nil {
		return err
	}
	if _, err := c.ByteOrder(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// ByteOrder resolves Order. A nil order with a nil error means detect, which
// only "auto" selects.
func (c Config) ByteOrder() (binary.ByteOrder, error) {
	return parseOrder(c.Order, true)
}

// Level resolves LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}

func parseOrder(name string, allowAuto bool) (binary.ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "big", "be":
		return binary.BigEndian, nil
	case "little", "le":
		return binary.LittleEndian, nil
	case "auto":
		if allowAuto {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("unknown byte order %q (want big, little or auto)", name)
}

// overlay copies the values of flags that were set explicitly on fs from
// src into c.
func (c *Config) overlay(fs *flag.FlagSet, src Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "method":
			c.Method = src.Method
		case "terms":
			c.Terms = src.Terms
		case "order":
			c.Order = src.Order
		case "log-level":
			c.LogLevel = src.LogLevel
		case "series":
			c.Series = src.Series
		case "compare":
			c.Compare = src.Compare
		}
	})
}
