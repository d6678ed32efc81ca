// Package config loads the bytestr CLI defaults from a TOML or YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/josephcopenhaver/go-exp-bytestr/xascii"
	"github.com/josephcopenhaver/go-exp-bytestr/xstrings"
	"gopkg.in/yaml.v3"
)

type Format uint8

const (
	FormatTOML Format = iota + 1
	FormatYAML
)

func (f Format) String() string {
	if f < FormatTOML || f > FormatYAML {
		return ""
	}

	return []string{
		"toml",
		"yaml",
	}[f-1]
}

var (
	ErrInvalidConfig = errors.New("invalid config")
)

type Config struct {
	// Delimiter is the single byte used by split and partition.
	Delimiter string `toml:"delimiter" yaml:"delimiter"`

	// Cutset is the set of bytes trimmed by trim, ltrim and rtrim.
	Cutset string `toml:"cutset" yaml:"cutset"`

	// JoinDelimiter is inserted between fields by join.
	JoinDelimiter string `toml:"join_delimiter" yaml:"join_delimiter"`

	// OutputSeparator is placed between the pieces a single record
	// produces, e.g. the parts of a split.
	OutputSeparator string `toml:"output_separator" yaml:"output_separator"`

	// RecordDelimiter separates input and output records.
	RecordDelimiter string `toml:"record_delimiter" yaml:"record_delimiter"`
	Workers         int    `toml:"workers" yaml:"workers"`
	BatchSize       int    `toml:"batch_size" yaml:"batch_size"`
	MaxIdleBuffers  int    `toml:"max_idle_buffers" yaml:"max_idle_buffers"`
}

func Default() Config {
	return Config{
		Delimiter:       ",",
		Cutset:          xascii.Whitespace,
		JoinDelimiter:   ",",
		OutputSeparator: "\t",
		RecordDelimiter: "\n",
		Workers:         4,
		BatchSize:       256,
		MaxIdleBuffers:  64,
	}
}

func (c *Config) Validate() error {
	var errs []error

	if len(c.Delimiter) != 1 {
		errs = append(errs, fmt.Errorf("delimiter must be exactly one byte, got %q", c.Delimiter))
	}

	if len(c.RecordDelimiter) != 1 {
		errs = append(errs, fmt.Errorf("record_delimiter must be exactly one byte, got %q", c.RecordDelimiter))
	}

	if c.Workers <= 0 {
		errs = append(errs, errors.New("workers must be greater than 0"))
	}

	if c.BatchSize <= 0 {
		errs = append(errs, errors.New("batch_size must be greater than 0"))
	}

	if c.MaxIdleBuffers <= 0 {
		errs = append(errs, errors.New("max_idle_buffers must be greater than 0"))
	}

	if len(errs) != 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// DetectFormat picks the format from the file extension; anything that
// is not .yaml or .yml is read as TOML.
func DetectFormat(path string) Format {
	if xstrings.HasSuffixIgnoreCaseASCII(path, ".yaml") || xstrings.HasSuffixIgnoreCaseASCII(path, ".yml") {
		return FormatYAML
	}

	return FormatTOML
}

// Parse overlays content onto Default and validates the result. Keys
// missing from content keep their default values.
func Parse(content []byte, format Format) (Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("toml parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format: %d", format)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads path and parses it with Parse. An empty path yields the
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(content, DetectFormat(path))
	if err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}

	return cfg, nil
}
