package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-csv2html/internal/fileutil"
	"github.com/alnah/go-csv2html/internal/pipeline"
	"github.com/alnah/go-csv2html/internal/table"
	"github.com/alnah/go-csv2html/internal/yamlutil"
)

// AppDirName is the directory searched under the user config directory.
const AppDirName = "go-csv2html"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxTitleLength    = 200   // Document <title>
	MaxIntroLength    = 10000 // Markdown intro
	MaxStyleLength    = 2048  // Style name or CSS file path
	MaxBasePathLength = 2048  // Custom asset directory
)

// Config holds all configuration for report generation.
type Config struct {
	Document DocumentConfig `yaml:"document"`
	Style    string         `yaml:"style"` // Embedded style name or CSS file path (empty = built-in look)
	CSV      CSVConfig      `yaml:"csv"`
	Rows     RowsConfig     `yaml:"rows"`
	Output   OutputConfig   `yaml:"output"`
	Assets   AssetsConfig   `yaml:"assets"`
}

// DocumentConfig defines document-level metadata.
type DocumentConfig struct {
	Title string `yaml:"title"` // Empty = "Feedback from European Dojo"
	Intro string `yaml:"intro"` // Markdown rendered above the first row
}

// CSVConfig defines input parsing options.
type CSVConfig struct {
	Delimiter  string `yaml:"delimiter"` // Single character (empty = ",")
	LazyQuotes bool   `yaml:"lazyQuotes"`
}

// RowsConfig defines how data rows are validated.
type RowsConfig struct {
	Policy     string `yaml:"policy"` // "pad" or "strict" (empty = "pad")
	AllowEmpty bool   `yaml:"allowEmpty"`
}

// OutputConfig defines output file options.
type OutputConfig struct {
	Overwrite *bool `yaml:"overwrite,omitempty"` // nil = true
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded styles only
}

// AllowOverwrite reports whether an existing output file may be replaced.
func (o OutputConfig) AllowOverwrite() bool {
	return o.Overwrite == nil || *o.Overwrite
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.intro", c.Document.Intro, MaxIntroLength); err != nil {
		return err
	}
	if err := validateFieldLength("style", c.Style, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxBasePathLength); err != nil {
		return err
	}

	if _, err := c.CSV.Rune(); err != nil {
		return err
	}

	if _, err := pipeline.ParseRowPolicy(c.Rows.Policy); err != nil {
		return fmt.Errorf("%w: rows.policy: %v", ErrInvalidValue, err)
	}

	return nil
}

// Rune returns the configured delimiter, or zero when unset.
func (c CSVConfig) Rune() (rune, error) {
	if c.Delimiter == "" {
		return 0, nil
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return 0, fmt.Errorf("%w: csv.delimiter must be a single character, got %q", ErrInvalidValue, c.Delimiter)
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	if err := table.ValidateDelimiter(r); err != nil {
		return 0, fmt.Errorf("%w: csv.delimiter: %v", ErrInvalidValue, err)
	}
	return r, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Rows: RowsConfig{Policy: string(pipeline.DefaultRowPolicy)},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.DecodeStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Marshal renders the configuration as YAML, in the same schema LoadConfig reads.
func (c *Config) Marshal() ([]byte, error) {
	return yamlutil.Encode(c)
}

// SearchPaths returns the locations LoadConfig tries for a config name,
// in order: ./NAME.yaml, ./NAME.yml, then the same names under
// {UserConfigDir}/go-csv2html/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
