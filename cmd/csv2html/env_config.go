package main

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/alnah/go-csv2html/internal/config"
)

// envPrefix namespaces every environment variable the CLI reads.
const envPrefix = "CSV2HTML_"

// ErrEnvConfig indicates an environment variable holds an unparsable value.
var ErrEnvConfig = errors.New("invalid environment variable")

// envConfig holds configuration from CSV2HTML_* environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string `env:"CONFIG"`      // config file name or path
	Title      string `env:"TITLE"`       // document title
	Style      string `env:"STYLE"`       // style name or CSS path
	AssetPath  string `env:"ASSET_PATH"`  // custom style directory
	Delimiter  string `env:"DELIMITER"`   // CSV field delimiter
	RowPolicy  string `env:"ROW_POLICY"`  // pad | strict
	AllowEmpty bool   `env:"ALLOW_EMPTY"` // render empty input
	LogLevel   string `env:"LOG_LEVEL"`   // debug | info | warn | error
	SeqURL     string `env:"SEQ_URL"`     // ship logs to a Seq server
}

// knownEnvVars lists valid CSV2HTML_* variables, derived from envConfig tags.
var knownEnvVars = func() map[string]bool {
	known := make(map[string]bool)
	t := reflect.TypeFor[envConfig]()
	for i := range t.NumField() {
		if tag := t.Field(i).Tag.Get("env"); tag != "" {
			known[envPrefix+tag] = true
		}
	}
	return known
}()

// loadEnvConfig parses CSV2HTML_* variables out of environ.
func loadEnvConfig(environ []string) (*envConfig, error) {
	var cfg envConfig
	err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      envPrefix,
		Environment: environMap(environ),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnvConfig, err)
	}
	return &cfg, nil
}

// environMap turns KEY=value pairs into a map. Later pairs win.
func environMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			m[k] = v
		}
	}
	return m
}

// warnUnknownEnvVars logs a warning for each unrecognized CSV2HTML_* variable.
// Helps catch typos like CSV2HTML_DELIMETER.
func warnUnknownEnvVars(logger *slog.Logger, environ []string) {
	var unknown []string
	for name := range environMap(environ) {
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		logger.Warn("unknown environment variable (typo?)", "name", name)
	}
}

// applyEnvConfig applies environment values to cfg.
// Only sets values if the variable is set AND the config value is empty.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(e *envConfig, cfg *config.Config) {
	if e.Title != "" && cfg.Document.Title == "" {
		cfg.Document.Title = e.Title
	}
	if e.Style != "" && cfg.Style == "" {
		cfg.Style = e.Style
	}
	if e.AssetPath != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = e.AssetPath
	}
	if e.Delimiter != "" && cfg.CSV.Delimiter == "" {
		cfg.CSV.Delimiter = e.Delimiter
	}
	if e.RowPolicy != "" && cfg.Rows.Policy == "" {
		cfg.Rows.Policy = e.RowPolicy
	}
	if e.AllowEmpty && !cfg.Rows.AllowEmpty {
		cfg.Rows.AllowEmpty = true
	}
}
