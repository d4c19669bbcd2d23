// Package config loads the optional md2tex book configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-md2tex/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// DefaultFileName is looked up in the working directory when no explicit
// config path is given.
const DefaultFileName = "md2tex.yaml"

// Config holds book-level settings. Every field is optional; CLI arguments
// take precedence over config values, which take precedence over defaults.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
}

// InputConfig defines where the book is read from.
type InputConfig struct {
	Dir      string `yaml:"dir"`      // Book source directory (default "src")
	Manifest string `yaml:"manifest"` // Manifest document name (default "SUMMARY.md")
}

// OutputConfig defines where the assembled document is written.
type OutputConfig struct {
	File string `yaml:"file"` // Output TeX file (default "book.tex")
}

// Load reads and parses a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	return &cfg, nil
}

// Discover returns the default config path under dir if one exists.
func Discover(dir string) (string, bool) {
	path := filepath.Join(dir, DefaultFileName)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}
