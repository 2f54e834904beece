// Package config loads optional YAML configuration for the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkrylov/go-mdpress/internal/fileutil"
	"github.com/mkrylov/go-mdpress/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits. Generous, but bounded.
const (
	MaxTitleLength   = 200  // PDF document title
	MaxAuthorLength  = 100  // PDF document author
	MaxCaptionLength = 30   // footer page word
	MaxDateLength    = 50   // footer date or "auto:FORMAT"
	MaxStyleLength   = 50   // chroma style name
	MaxPathLength    = 4096 // font directory
)

// Config holds all CLI configuration for document generation.
type Config struct {
	Document    DocumentConfig  `yaml:"document"`
	Footer      FooterConfig    `yaml:"footer"`
	Fonts       FontsConfig     `yaml:"fonts"`
	Highlight   HighlightConfig `yaml:"highlight"`
	FrontMatter bool            `yaml:"frontMatter"`
}

// DocumentConfig sets PDF metadata.
type DocumentConfig struct {
	Title  string `yaml:"title"`  // empty = built-in default
	Author string `yaml:"author"` // empty = built-in default
}

// FooterConfig sets the per-page footer.
type FooterConfig struct {
	Caption string `yaml:"caption"` // page word, empty = built-in default
	Date    string `yaml:"date"`    // optional; supports "auto" / "auto:FORMAT"
}

// FontsConfig sets where the three font assets are read from.
type FontsConfig struct {
	Dir string `yaml:"dir"` // empty = standard Liberation font path
}

// HighlightConfig enables code block syntax highlighting.
type HighlightConfig struct {
	Enabled bool   `yaml:"enabled"`
	Style   string `yaml:"style"` // chroma style name, empty = default
}

// Validate checks field lengths. Called automatically by Load, but
// available for consumers who construct Config manually.
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value string
		max   int
	}{
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.author", c.Document.Author, MaxAuthorLength},
		{"footer.caption", c.Footer.Caption, MaxCaptionLength},
		{"footer.date", c.Footer.Date, MaxDateLength},
		{"fonts.dir", c.Fonts.Dir, MaxPathLength},
		{"highlight.style", c.Highlight.Style, MaxStyleLength},
	}
	for _, check := range checks {
		if len(check.value) > check.max {
			return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, check.name, len(check.value), check.max)
		}
	}
	return nil
}

// Load reads configuration from a file path or config name. A string with a
// path separator is treated as a file path; otherwise it is a config name
// searched in standard locations. Missing files are an error, never a
// silent fallback.
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !strings.ContainsAny(nameOrPath, "/\\") {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolveConfigPath searches for a config file by name: .yaml then .yml, in
// the current directory then the user config directory.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		tried = append(tried, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "mdpress", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			tried = append(tried, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
