// Package config loads command line tool configuration from the
// environment.
package config

import (
	"github.com/cockroachdb/errors"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the prefix of every environment variable read by Load.
const Prefix = "PDFCALC"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the configuration of pdfcalc.
type Config struct {
	Log LogConfig `envconfig:"LOG"`
	OutputConfig
}

// LogConfig holds logging configuration, read from PDFCALC_LOG_LEVEL
// and PDFCALC_LOG_DEV.
type LogConfig struct {
	Level       string `envconfig:"LEVEL" default:"warn"`
	Development bool   `envconfig:"DEV" default:"false"`
}

// OutputConfig holds result formatting configuration, read from
// PDFCALC_FORMAT and PDFCALC_PRECISION.
type OutputConfig struct {
	Format string `envconfig:"FORMAT" default:"text"`

	// Precision is the number of significant digits of printed
	// values.
	Precision int `envconfig:"PRECISION" default:"6"`
}

// Load loads configuration from PDFCALC_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from the environment or returns
// the default configuration.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:       "warn",
			Development: false,
		},
		OutputConfig: OutputConfig{
			Format:    FormatText,
			Precision: 6,
		},
	}
}

// Validate checks cfg for unsupported values.
func (cfg *Config) Validate() error {
	switch cfg.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return errors.Newf("unsupported output format %q", cfg.Format)
	}
	if cfg.Precision < 1 || cfg.Precision > 17 {
		return errors.Newf("precision %d out of range [1, 17]", cfg.Precision)
	}
	return nil
}
