// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/H0llyW00dzZ/logfacade/src/logger"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig is returned when a configuration document fails
	// schema validation or names an unusable value.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnknownFormatter is returned for a formatter name other than
	// "simple", "json" or "color".
	ErrUnknownFormatter = errors.New("config: unknown formatter")

	// ErrUnknownTransport is returned for a transport type other than
	// "console", "stdout", "stderr" or "file".
	ErrUnknownTransport = errors.New("config: unknown transport")
)

// Format is a configuration file format.
type Format int

const (
	// FormatJSON represents JSON configuration format (.json)
	FormatJSON Format = iota
	// FormatYAML represents YAML configuration format (.yaml, .yml)
	FormatYAML
)

// Formatter names accepted in the "formatter" field.
const (
	FormatterSimple = "simple"
	FormatterJSON   = "json"
	FormatterColor  = "color"
)

// Transport types accepted in a transport's "type" field.
const (
	TransportConsole = "console"
	TransportStdout  = "stdout"
	TransportStderr  = "stderr"
	TransportFile    = "file"
)

// Transport describes one output of the logger.
type Transport struct {
	// Type: console (alias stdout), stderr or file, case-insensitive
	Type string `json:"type" yaml:"type"`
	// Path: file to append to, required when Type is file
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// Config is the declarative form of a logger configuration.
type Config struct {
	// Threshold: minimum level name, case-insensitive (default "debug")
	Threshold string `json:"threshold,omitempty" yaml:"threshold,omitempty"`
	// Timestamps: whether entries carry the current time (default true)
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
	// Formatter: simple, json or color, case-insensitive (default simple)
	Formatter string `json:"formatter,omitempty" yaml:"formatter,omitempty"`
	// Transports: outputs in delivery order; nil means a single console transport
	Transports []Transport `json:"transports,omitempty" yaml:"transports,omitempty"`
}

// Default returns the configuration equivalent to [logger.New] with no options.
func Default() *Config {
	timestamps := true
	return &Config{
		Threshold:  "debug",
		Timestamps: &timestamps,
		Formatter:  FormatterSimple,
	}
}

// DetectFormat determines the configuration file format from its extension,
// case-insensitively. Anything other than .yaml or .yml is treated as JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads, validates and decodes the configuration file at path.
//
// The format is chosen by [DetectFormat]. Formatter names and transport
// types are matched case-insensitively and stored lowercased; missing fields
// take the values from [Default].
//
// Parameters:
//   - path: Path to a JSON or YAML configuration file
//
// Returns:
//   - *Config: The decoded configuration
//   - error: Read failure, parse failure, or an error wrapping [ErrInvalidConfig] when the document fails schema validation
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data, DetectFormat(path))
}

// Parse validates and decodes a configuration document.
//
// The document is first decoded into its generic form and checked against
// [Schema], then decoded into a [Config]. An empty or whitespace-only
// document yields [Default].
//
// Parameters:
//   - data: Raw document bytes
//   - format: [FormatJSON] or [FormatYAML]
//
// Returns:
//   - *Config: The decoded configuration with defaults applied and names lowercased
//   - error: Parse failure, or an error wrapping [ErrInvalidConfig] when validation fails
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	var doc any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}

	if err := validate(doc); err != nil {
		return nil, err
	}

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize fills missing fields from [Default] and lowercases the names
// the schema accepts in any case.
func (c *Config) normalize() {
	def := Default()
	if c.Threshold == "" {
		c.Threshold = def.Threshold
	}
	if c.Timestamps == nil {
		c.Timestamps = def.Timestamps
	}
	if c.Formatter == "" {
		c.Formatter = def.Formatter
	}
	c.Formatter = strings.ToLower(c.Formatter)
	for i := range c.Transports {
		c.Transports[i].Type = strings.ToLower(c.Transports[i].Type)
	}
}

// Options converts the configuration into logger options. The returned
// closer releases any files opened for file transports; it is never nil.
// On error nothing is left open.
func (c *Config) Options() ([]logger.Option, io.Closer, error) {
	var opts []logger.Option

	if c.Threshold != "" {
		lvl, err := logger.ParseLevel(c.Threshold)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: threshold: %w", ErrInvalidConfig, err)
		}
		opts = append(opts, logger.WithThreshold(lvl))
	}

	if c.Timestamps != nil {
		opts = append(opts, logger.WithTimestamps(*c.Timestamps))
	}

	formatter, err := newFormatter(c.Formatter)
	if err != nil {
		return nil, nil, err
	}
	opts = append(opts, logger.WithFormatter(formatter))

	closers := closerList{}
	if c.Transports != nil {
		transports := make([]logger.Transport, 0, len(c.Transports))
		for i, tc := range c.Transports {
			t, closer, err := newTransport(tc)
			if err != nil {
				closers.Close()
				return nil, nil, fmt.Errorf("transports[%d]: %w", i, err)
			}
			if closer != nil {
				closers = append(closers, closer)
			}
			transports = append(transports, t)
		}
		opts = append(opts, logger.WithTransports(transports...))
	}

	return opts, closers, nil
}

// Build creates a logger from the configuration.
//
// Parameters:
//   - extra: Options applied after the configured ones, so they take precedence
//
// Returns:
//   - *logger.Logger: The configured logger
//   - io.Closer: Releases files opened for file transports; the caller must Close it when done with the logger
//   - error: An error wrapping [ErrInvalidConfig], [ErrUnknownFormatter] or [ErrUnknownTransport], or a file open failure
func (c *Config) Build(extra ...logger.Option) (*logger.Logger, io.Closer, error) {
	opts, closer, err := c.Options()
	if err != nil {
		return nil, nil, err
	}
	return logger.New(append(opts, extra...)...), closer, nil
}

func newFormatter(name string) (logger.Formatter, error) {
	switch strings.ToLower(name) {
	case "", FormatterSimple:
		return logger.NewSimpleFormatter(), nil
	case FormatterJSON:
		return logger.NewJSONFormatter(), nil
	case FormatterColor:
		return logger.NewColorFormatter(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormatter, name)
	}
}

func newTransport(tc Transport) (logger.Transport, io.Closer, error) {
	switch strings.ToLower(tc.Type) {
	case TransportConsole, TransportStdout:
		return logger.NewConsoleTransport(), nil, nil
	case TransportStderr:
		return logger.NewStderrTransport(), nil, nil
	case TransportFile:
		if tc.Path == "" {
			return nil, nil, fmt.Errorf("%w: file transport requires a path", ErrInvalidConfig)
		}
		ft, err := logger.NewFileTransport(tc.Path)
		if err != nil {
			return nil, nil, err
		}
		return ft, ft, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownTransport, tc.Type)
	}
}

// closerList closes every element, joining their errors.
type closerList []io.Closer

func (l closerList) Close() error {
	var errs []error
	for _, c := range l {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
