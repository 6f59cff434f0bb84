// Package config loads dotdoc configuration from .dotdoc/config.yml with
// environment variable overrides.
package config

import (
	"fmt"
	"runtime"
)

// Config represents the complete dotdoc configuration.
type Config struct {
	Paths   PathsConfig   `yaml:"paths" mapstructure:"paths"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Extract ExtractConfig `yaml:"extract" mapstructure:"extract"`
}

// PathsConfig defines which files to document and which to ignore.
type PathsConfig struct {
	Include []string `yaml:"include" mapstructure:"include"` // glob patterns for source files
	Ignore  []string `yaml:"ignore" mapstructure:"ignore"`   // glob patterns to ignore
}

// OutputConfig defines how extracted documentation is rendered.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"` // "json", "yaml", or "html"
	Path   string `yaml:"path" mapstructure:"path"`     // output file, empty for stdout
}

// ExtractConfig tunes the extraction run.
type ExtractConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"` // files extracted concurrently
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Include: []string{
				"**/*.cs",
				"**/*.vb",
			},
			Ignore: []string{
				"bin/**",
				"obj/**",
				"packages/**",
				".git/**",
				"**/*.Designer.cs",
			},
		},
		Output: OutputConfig{
			Format: "json",
		},
		Extract: ExtractConfig{
			Workers: runtime.NumCPU(),
		},
	}
}

// Validate checks a loaded configuration for usable values.
func Validate(cfg *Config) error {
	switch cfg.Output.Format {
	case "json", "yaml", "html":
	default:
		return fmt.Errorf("unknown output format %q (want json, yaml, or html)", cfg.Output.Format)
	}
	if len(cfg.Paths.Include) == 0 {
		return fmt.Errorf("paths.include must name at least one pattern")
	}
	if cfg.Extract.Workers < 1 {
		return fmt.Errorf("extract.workers must be at least 1, got %d", cfg.Extract.Workers)
	}
	return nil
}
