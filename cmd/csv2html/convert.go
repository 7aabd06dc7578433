package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	csv2html "github.com/alnah/go-csv2html"
	"github.com/alnah/go-csv2html/internal/config"
	"github.com/alnah/go-csv2html/internal/fileutil"
	"github.com/alnah/go-csv2html/internal/hints"
	"github.com/alnah/go-csv2html/internal/logging"
)

// Sentinel errors for the convert command.
var (
	ErrUsage     = errors.New("usage: csv2html [convert] [flags] <input.csv> <output.html>")
	ErrIntroFile = errors.New("failed to read intro file")
)

// runConvert handles the convert command: the second-to-last positional
// is the input CSV, the last one the output HTML file.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	f, fs, positionals, err := parseConvertFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printConvertUsage(env.Stdout)
		return nil
	}
	if err != nil {
		return err
	}

	environ := env.Environ()
	envCfg, err := loadEnvConfig(environ)
	if err != nil {
		return err
	}

	logger, closeLogger, err := newLogger(env, f.common, envCfg)
	if err != nil {
		return err
	}
	defer closeLogger()
	warnUnknownEnvVars(logger, environ)

	if len(positionals) < 2 {
		return ErrUsage
	}
	if len(positionals) > 2 {
		logger.Debug("ignoring extra arguments", "args", positionals[:len(positionals)-2])
	}
	inputPath := positionals[len(positionals)-2]
	outputPath := positionals[len(positionals)-1]

	cfg, err := resolveConfig(f, fs, envCfg)
	if err != nil {
		return err
	}

	intro, err := resolveIntro(f.document.intro, cfg)
	if err != nil {
		return err
	}

	conv, err := csv2html.NewConverter(converterOptions(cfg, intro, logger)...)
	if err != nil {
		return withHints(err, cfg)
	}

	start := env.Now()
	res, err := conv.ConvertFile(ctx, inputPath, outputPath)
	if err != nil {
		return withHints(err, cfg)
	}
	elapsed := env.Now().Sub(start)

	logger.Info("converted", "input", inputPath, "output", outputPath, "rows", res.Rows, "duration", elapsed)

	if f.common.quiet {
		return nil
	}
	fmt.Fprintf(env.Stdout, "Created %s\n", outputPath)
	if f.common.verbose {
		fmt.Fprintf(env.Stdout, "  %d rows, %d columns, %d adjusted (%s)\n",
			res.Rows, res.Columns, res.Adjusted, elapsed.Round(time.Millisecond))
	}
	return nil
}

// newLogger builds the stderr logger. --verbose wins over --quiet,
// both win over CSV2HTML_LOG_LEVEL.
func newLogger(env *Environment, f commonFlags, envCfg *envConfig) (*slog.Logger, func(), error) {
	var level slog.Level
	switch {
	case f.verbose:
		level = slog.LevelDebug
	case f.quiet:
		level = slog.LevelError
	default:
		parsed, err := logging.ParseLevel(envCfg.LogLevel)
		if err != nil {
			return nil, nil, err
		}
		level = parsed
	}

	logger, closeLogger := logging.New(env.Stderr, logging.Options{Level: level, SeqURL: envCfg.SeqURL})
	return logger, closeLogger, nil
}

// resolveConfig loads the config file (flag, then CSV2HTML_CONFIG), fills
// gaps from the environment, applies explicit flags, and validates.
// Priority: CLI flags > config file > env vars > defaults.
func resolveConfig(f *convertFlags, fs *flag.FlagSet, envCfg *envConfig) (*config.Config, error) {
	cfg, err := loadConfigFile(f.common.config, envCfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(f, fs, cfg)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfigFile loads the named config. No name yields an empty config.
func loadConfigFile(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return &config.Config{}, nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, err
	}
	return cfg, nil
}

// mergeFlags applies explicitly set flags over config values.
// String flags apply when non-empty; bool flags only when given.
func mergeFlags(f *convertFlags, fs *flag.FlagSet, cfg *config.Config) {
	if f.document.title != "" {
		cfg.Document.Title = f.document.title
	}
	if f.assets.style != "" {
		cfg.Style = f.assets.style
	}
	if f.assets.assetPath != "" {
		cfg.Assets.BasePath = f.assets.assetPath
	}
	if f.csv.delimiter != "" {
		cfg.CSV.Delimiter = f.csv.delimiter
	}
	if fs.Changed("lazy-quotes") {
		cfg.CSV.LazyQuotes = f.csv.lazyQuotes
	}
	if f.rows.policy != "" {
		cfg.Rows.Policy = f.rows.policy
	}
	if fs.Changed("allow-empty") {
		cfg.Rows.AllowEmpty = f.rows.allowEmpty
	}
	if fs.Changed("no-overwrite") {
		overwrite := !f.output.noOverwrite
		cfg.Output.Overwrite = &overwrite
	}
}

// applyDefaults fills whatever flags, config and environment left empty.
func applyDefaults(cfg *config.Config) {
	defaults := config.DefaultConfig()
	if cfg.Rows.Policy == "" {
		cfg.Rows.Policy = defaults.Rows.Policy
	}
}

// resolveIntro returns the intro Markdown: the --intro file when given,
// otherwise document.intro from the config.
func resolveIntro(path string, cfg *config.Config) (string, error) {
	if path == "" {
		return cfg.Document.Intro, nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided intro path
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrIntroFile, path, err)
	}
	if len(data) > config.MaxIntroLength {
		return "", fmt.Errorf("%w: intro file exceeds %d bytes", config.ErrFieldTooLong, config.MaxIntroLength)
	}
	return string(data), nil
}

// converterOptions maps a validated config onto converter options.
func converterOptions(cfg *config.Config, intro string, logger *slog.Logger) []csv2html.Option {
	opts := []csv2html.Option{
		csv2html.WithTitle(cfg.Document.Title),
		csv2html.WithIntro(intro),
		csv2html.WithStyle(cfg.Style),
		csv2html.WithAssetPath(cfg.Assets.BasePath),
		csv2html.WithRowPolicy(cfg.Rows.Policy),
		csv2html.WithAllowEmpty(cfg.Rows.AllowEmpty),
		csv2html.WithLazyQuotes(cfg.CSV.LazyQuotes),
		csv2html.WithOverwrite(cfg.Output.AllowOverwrite()),
		csv2html.WithLogger(logger),
	}
	// Validate already rejected bad delimiters.
	if r, err := cfg.CSV.Rune(); err == nil && r != 0 {
		opts = append(opts, csv2html.WithDelimiter(r))
	}
	return opts
}

// withHints appends an actionable hint to known failures.
func withHints(err error, cfg *config.Config) error {
	var hint string
	switch {
	case errors.Is(err, csv2html.ErrEmptyTable):
		hint = hints.ForEmptyTable()
	case errors.Is(err, csv2html.ErrRaggedRow):
		hint = hints.ForRaggedRow()
	case errors.Is(err, csv2html.ErrParse):
		hint = hints.ForCSVParse(err)
	case errors.Is(err, csv2html.ErrFileExists):
		hint = hints.ForFileExists()
	case errors.Is(err, csv2html.ErrReadInput) && errors.Is(err, os.ErrNotExist):
		hint = hints.ForInputNotFound()
	case errors.Is(err, csv2html.ErrWriteOutput):
		hint = hints.ForOutputDirectory()
	case errors.Is(err, csv2html.ErrStyleNotFound):
		if loader, loadErr := csv2html.NewStyleLoader(cfg.Assets.BasePath); loadErr == nil {
			hint = hints.ForStyleNotFound(withDefaultStyle(loader.Styles()))
		}
	}
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}
