// Package config loads and validates the blindcube CLI configuration.
//
// A config file is YAML; every field is optional and falls back to
// Default(). Unknown keys are rejected.
//
//	log:
//	  level: info        # trace | debug | info | warn | error
//	  format: text       # text | json
//	search:
//	  workers: 4         # 1..64
//	  max_distance: 2    # 1..2
//	  swap_inspection: false
//	algorithms: algs.yaml
//	color: true
//	metrics:
//	  namespace: blindcube
//	  addr: ""           # host:port to serve /metrics; empty disables
//	  dump: false        # print gathered metrics after each command
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a config that fails validation.
var ErrInvalid = errors.New("config: invalid")

var validate = validator.New()

// Config is the full CLI configuration.
type Config struct {
	Log        LogConfig     `yaml:"log"`
	Search     SearchConfig  `yaml:"search"`
	Algorithms string        `yaml:"algorithms" validate:"omitempty,file"`
	Color      bool          `yaml:"color"`
	Metrics    MetricsConfig `yaml:"metrics"`
}

// LogConfig selects logrus level and formatter.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// SearchConfig tunes detector construction.
type SearchConfig struct {
	Workers        int  `yaml:"workers" validate:"gte=1,lte=64"`
	MaxDistance    int  `yaml:"max_distance" validate:"gte=1,lte=2"`
	SwapInspection bool `yaml:"swap_inspection"`
}

// MetricsConfig controls the Prometheus collector.
type MetricsConfig struct {
	Namespace string `yaml:"namespace" validate:"required,alphanum"`
	Addr      string `yaml:"addr" validate:"omitempty,hostname_port"`
	Dump      bool   `yaml:"dump"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log:     LogConfig{Level: "info", Format: "text"},
		Search:  SearchConfig{Workers: 1, MaxDistance: 2},
		Color:   true,
		Metrics: MetricsConfig{Namespace: "blindcube"},
	}
}

// Parse decodes data over Default() and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: Parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the file at path. An empty path yields Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: Load: %w", err)
	}

	return Parse(data)
}

// Validate checks every field rule.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// NewLogger builds a logrus logger writing to w.
func (c LogConfig) NewLogger(w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("config: NewLogger: %w", err)
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	if c.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	return l, nil
}
