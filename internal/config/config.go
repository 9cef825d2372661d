// Package config loads antplane settings from a file, the environment and flags.
//
// Precedence, lowest to highest: defaults, config file, environment, flags.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/antplane/internal/logging"
)

var (
	// ErrConfigNotFound indicates the config file does not exist.
	ErrConfigNotFound = errors.New("config: file not found")
	// ErrUnsupportedFormat indicates a config file extension other than .yaml, .yml or .json.
	ErrUnsupportedFormat = errors.New("config: unsupported format")
	// ErrInvalidConfig indicates a value outside its allowed set.
	ErrInvalidConfig = errors.New("config: invalid value")
)

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel  = "ANTPLANE_LOG_LEVEL"
	EnvLogFormat = "ANTPLANE_LOG_FORMAT"
)

// Format represents a configuration file format.
type Format string

const (
	// FormatYAML is the YAML format.
	FormatYAML Format = "yaml"
	// FormatJSON is the JSON format.
	FormatJSON Format = "json"
)

// Config is the full set of runtime settings.
type Config struct {
	Log LogConfig `yaml:"log" json:"log"`
}

// LogConfig selects the logger's level and output format.
type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	d := logging.DefaultConfig()

	return Config{Log: LogConfig{Level: d.Level, Format: d.Format}}
}

// LoadFile reads a config file, choosing the format from its extension.
// Fields missing from the file keep their defaults.
func LoadFile(path string) (Config, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".json":
		format = FormatJSON
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	return Load(f, format)
}

// Load decodes a config from r. Unknown keys are rejected.
func Load(r io.Reader, format Format) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case FormatJSON:
		if len(bytes.TrimSpace(data)) == 0 {
			break
		}
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return cfg, nil
}

// ApplyEnv overrides settings from environment variables found by lookup
// (usually os.LookupEnv). Empty values are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Log.Format = v
	}
}

// Validate checks every setting against its allowed values.
func (c Config) Validate() error {
	if !slices.Contains(logging.Levels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("%w: log level %q (want one of %s)", ErrInvalidConfig, c.Log.Level, strings.Join(logging.Levels, ", "))
	}
	if !slices.Contains(logging.Formats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("%w: log format %q (want one of %s)", ErrInvalidConfig, c.Log.Format, strings.Join(logging.Formats, ", "))
	}

	return nil
}

// Logging returns the logger configuration for these settings.
func (c Config) Logging(out io.Writer) logging.Config {
	return logging.Config{Level: c.Log.Level, Format: c.Log.Format, Output: out}
}
