// Package config holds the run configuration of colscore and loads it from
// an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/colscore/distance"
	"github.com/katalvlaran/colscore/tsplib"
	"gopkg.in/yaml.v3"
)

// StdoutPath is the Output value meaning "write to standard output".
const StdoutPath = "-"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the in-memory representation of a colscore YAML file.
//
//	metric: manhattan
//	output: out.tsp.gz
//	name_prefix: column similarity for
//	log_level: info
type Config struct {
	Metric     distance.Metric `yaml:"metric"`
	Output     string          `yaml:"output,omitempty"`
	NamePrefix string          `yaml:"name_prefix,omitempty"`
	LogLevel   string          `yaml:"log_level,omitempty"`
}

// Default returns the configuration used when no file and no flags are given.
func Default() *Config {
	return &Config{
		Metric:     distance.DefaultMetric,
		Output:     StdoutPath,
		NamePrefix: tsplib.ColumnNamePrefix,
		LogLevel:   "warn",
	}
}

// Load reads path and overlays it on Default(). Keys missing from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks field values that YAML decoding alone cannot reject.
func (c *Config) Validate() error {
	if _, err := c.Metric.MarshalText(); err != nil {
		return fmt.Errorf("%w: metric: %w", ErrInvalid, err)
	}
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("%w: output must not be empty (use %q for stdout)", ErrInvalid, StdoutPath)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// ToStdout reports whether the instance goes to standard output.
func (c *Config) ToStdout() bool {
	return c.Output == StdoutPath
}

// ParseLevel maps debug/info/warn/error (case-insensitive) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}

	return l, nil
}
