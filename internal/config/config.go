// SPDX-License-Identifier: MIT

// Package config loads latred settings from defaults, a latred.yaml file,
// LATRED_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lattice/internal/fault"
	"github.com/katalvlaran/lattice/internal/logging"
	"github.com/katalvlaran/lattice/internal/report"
	"github.com/katalvlaran/lattice/lattice"
)

// Defaults.
const (
	DefaultOutput    = "result.txt"
	DefaultFormat    = report.FormatText
	DefaultLogLevel  = "warn"
	DefaultLogFormat = logging.FormatConsole
	EnvPrefix        = "LATRED"
	FileName         = "latred"
)

// Config is the resolved latred configuration.
type Config struct {
	Tolerance     float64   `mapstructure:"tolerance"`
	Delta         float64   `mapstructure:"delta"`
	MaxIterations int       `mapstructure:"max_iterations"`
	Output        string    `mapstructure:"output"`
	Format        string    `mapstructure:"format"`
	Log           LogConfig `mapstructure:"log"`
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flag name -> viper key
var flagKeys = map[string]string{
	"tolerance":      "tolerance",
	"delta":          "delta",
	"max-iterations": "max_iterations",
	"output":         "output",
	"format":         "format",
	"log-level":      "log.level",
	"log-format":     "log.format",
}

// SetDefaults registers every key's default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("tolerance", lattice.DefaultDegeneracyTolerance)
	v.SetDefault("delta", lattice.DefaultDelta)
	v.SetDefault("max_iterations", lattice.DefaultMaxIterations)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
}

// SetupEnv maps nested keys to LATRED_* variables (log.level -> LATRED_LOG_LEVEL).
func SetupEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// RegisterFlags adds the reduction and output flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Float64("tolerance", lattice.DefaultDegeneracyTolerance, "degeneracy tolerance for projection denominators")
	fs.Float64("delta", lattice.DefaultDelta, "Lovász factor, in (0.25, 0.75]")
	fs.Int("max-iterations", lattice.DefaultMaxIterations, "cap on LLL loop iterations (0 = unbounded)")
	fs.StringP("output", "o", DefaultOutput, "result file path (- for stdout)")
	fs.StringP("format", "f", DefaultFormat, "result format: text, yaml or json")
	fs.String("log-level", DefaultLogLevel, "log level: debug, info, warn, error")
	fs.String("log-format", DefaultLogFormat, "log format: console or json")
}

// BindFlags binds every flag registered by RegisterFlags that fs carries.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fault.Wrapf(err, fault.CodeConfigLoadReadFailure, "binding %s flag", name)
		}
	}

	return nil
}

// Load reads path (or discovers latred.yaml when path is empty) into v and
// returns the validated configuration. v must already carry defaults, env
// setup and flag bindings.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fault.Wrapf(err, fault.CodeConfigLoadReadFailure, "reading config %s", path)
		}
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", FileName))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fault.Wrapf(err, fault.CodeConfigLoadReadFailure, "reading config")
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fault.Wrapf(err, fault.CodeConfigValidateInvalidValue, "unmarshalling config")
	}

	if err := fault.Join(fault.CodeConfigValidateInvalidValue, cfg.Validate()...); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate collects every invalid setting instead of stopping at the first.
func (c *Config) Validate() []error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fault.Errorf(fault.CodeConfigValidateInvalidValue, "config: "+format, args...))
	}

	if math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance < 0 {
		invalid("tolerance must be finite and non-negative, got %g", c.Tolerance)
	}
	if math.IsNaN(c.Delta) || c.Delta <= 0.25 || c.Delta > 0.75 {
		invalid("delta must be in (0.25, 0.75], got %g", c.Delta)
	}
	if c.MaxIterations < 0 {
		invalid("max_iterations must be >= 0, got %d", c.MaxIterations)
	}
	if c.Output == "" {
		invalid("output must not be empty")
	}
	switch c.Format {
	case report.FormatText, report.FormatYAML, report.FormatJSON:
	default:
		invalid("format must be one of [text, yaml, json], got %q", c.Format)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		invalid("log.level %q: %v", c.Log.Level, err)
	}
	switch c.Log.Format {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		invalid("log.format must be one of [console, json], got %q", c.Log.Format)
	}

	return errs
}

// Options translates c into lattice options. Validate must have passed.
func (c *Config) Options() []lattice.Option {
	return []lattice.Option{
		lattice.WithDegeneracyTolerance(c.Tolerance),
		lattice.WithDelta(c.Delta),
		lattice.WithMaxIterations(c.MaxIterations),
	}
}
