// Package config loads analysis settings from YAML and turns them into the
// options of the waves package.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-waves/dsp/window"
	"github.com/cwbudde/algo-waves/waves"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the top-level analysis configuration.
type Config struct {
	Analysis      AnalysisConfig      `yaml:"analysis"`
	Extrapolation ExtrapolationConfig `yaml:"extrapolation"`
	Observer      ObserverConfig      `yaml:"observer"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// AnalysisConfig controls strain and radiative-quantity computations.
type AnalysisConfig struct {
	PCut        float64 `yaml:"pcut"`
	MaxDegree   int     `yaml:"max_degree"`   // 0 = all degrees
	Window      string  `yaml:"window"`       // empty = no taper
	WindowAlpha float64 `yaml:"window_alpha"` // 0 = registry default
	TrimEnds    bool    `yaml:"trim_ends"`
	Workers     int     `yaml:"workers"` // 0 = GOMAXPROCS
}

// ExtrapolationConfig controls extrapolation to infinite radius.
type ExtrapolationConfig struct {
	Order          int     `yaml:"order"`
	ADMMass        float64 `yaml:"adm_mass"`
	AmplitudePhase bool    `yaml:"amplitude_phase"`
}

// ObserverConfig places the observer in the source frame and the source on
// the sky. Angles are in radians.
type ObserverConfig struct {
	Theta          float64   `yaml:"theta"`
	Phi            float64   `yaml:"phi"`
	RightAscension float64   `yaml:"right_ascension"`
	Declination    float64   `yaml:"declination"`
	Time           time.Time `yaml:"time"`
	Polarization   float64   `yaml:"polarization"`
}

// LoggingConfig selects the log level and encoding ("json" or "console").
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			PCut:     120,
			TrimEnds: true,
		},
		Extrapolation: ExtrapolationConfig{
			Order:   2,
			ADMMass: 1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads a YAML file over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var err error

	invalid := func(format string, args ...any) {
		err = multierr.Append(err, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	a := c.Analysis
	if !(a.PCut > 0) {
		invalid("analysis.pcut must be positive, got %g", a.PCut)
	}

	if a.MaxDegree < 0 {
		invalid("analysis.max_degree must not be negative, got %d", a.MaxDegree)
	}

	if a.Window != "" {
		if _, lerr := window.Lookup(a.Window); lerr != nil {
			invalid("analysis.window %q (valid: %v)", a.Window, window.Names())
		}
	}

	if a.WindowAlpha < 0 {
		invalid("analysis.window_alpha must not be negative, got %g", a.WindowAlpha)
	}

	if a.Workers < 0 {
		invalid("analysis.workers must not be negative, got %d", a.Workers)
	}

	if c.Extrapolation.Order < 0 {
		invalid("extrapolation.order must not be negative, got %d", c.Extrapolation.Order)
	}

	if c.Extrapolation.ADMMass < 0 {
		invalid("extrapolation.adm_mass must not be negative, got %g", c.Extrapolation.ADMMass)
	}

	if _, lerr := zapcore.ParseLevel(c.Logging.Level); lerr != nil {
		invalid("logging.level %q", c.Logging.Level)
	}

	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		invalid("logging.format %q (valid: json, console)", c.Logging.Format)
	}

	return err
}

// StrainOptions returns the query options of the analysis section.
func (c *Config) StrainOptions() []waves.QueryOption {
	a := c.Analysis
	opts := []waves.QueryOption{waves.WithTrimEnds(a.TrimEnds)}

	if a.MaxDegree > 0 {
		opts = append(opts, waves.WithMaxDegree(a.MaxDegree))
	}

	if a.Window != "" {
		var wopts []window.Option
		if a.WindowAlpha > 0 {
			wopts = append(wopts, window.WithAlpha(a.WindowAlpha))
		}

		opts = append(opts, waves.WithWindow(waves.NamedWindow(a.Window, wopts...)))
	}

	return opts
}

// DetectorOptions returns the detector and collection options, logging to logger.
func (c *Config) DetectorOptions(logger *zap.Logger) []waves.Option {
	opts := []waves.Option{waves.WithLogger(logger)}

	if c.Analysis.Workers > 0 {
		opts = append(opts, waves.WithWorkers(c.Analysis.Workers))
	}

	return opts
}

// ExtrapolationOptions returns the options of the extrapolation section.
func (c *Config) ExtrapolationOptions() waves.ExtrapolationOptions {
	return waves.ExtrapolationOptions{
		Order:          c.Extrapolation.Order,
		Mass:           c.Extrapolation.ADMMass,
		AmplitudePhase: c.Extrapolation.AmplitudePhase,
	}
}

// SkyPosition returns the source location of the observer section.
func (c *Config) SkyPosition() waves.SkyPosition {
	return waves.SkyPosition{
		RightAscension: c.Observer.RightAscension,
		Declination:    c.Observer.Declination,
		Time:           c.Observer.Time,
		Polarization:   c.Observer.Polarization,
	}
}
