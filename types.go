package csv2html

import (
	"log/slog"

	"github.com/alnah/go-csv2html/internal/pipeline"
)

// Row policies accepted by WithRowPolicy.
const (
	RowPolicyPad    = string(pipeline.RowPolicyPad)
	RowPolicyStrict = string(pipeline.RowPolicyStrict)
)

// DefaultTitle is the document title used when WithTitle is not given.
const DefaultTitle = pipeline.DefaultTitle

// Input is one CSV document to convert.
type Input struct {
	CSV []byte // raw CSV bytes; a leading byte order mark is honored

	// Source names the input in log records (usually its path). Optional.
	Source string
}

// ConvertResult holds the generated document and what went into it.
type ConvertResult struct {
	HTML     []byte
	Rows     int // commentary rows rendered
	Columns  int // header cells
	Adjusted int // rows padded or truncated by the pad policy
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	title      string
	intro      string
	styleInput string
	assetPath  string
	rowPolicy  string
	allowEmpty bool
	delimiter  rune
	lazyQuotes bool
	overwrite  bool
}

// WithTitle sets the document <title>. Empty keeps DefaultTitle.
func WithTitle(title string) Option {
	return func(c *Converter) {
		c.cfg.title = title
	}
}

// WithIntro sets Markdown rendered above the first row, followed by a
// horizontal rule. Raw HTML in the Markdown is dropped.
func WithIntro(markdown string) Option {
	return func(c *Converter) {
		c.cfg.intro = markdown
	}
}

// WithStyle sets the report stylesheet. Accepts:
//   - Style name: "print", "compact" (embedded or from WithAssetPath)
//   - File path: "./custom.css" or "/abs/path/style.css"
//
// Empty or "default" keeps the built-in stylesheet.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithAssetPath sets a directory whose styles/{name}.css files take
// precedence over the embedded styles.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithStyleLoader sets a custom style source. It takes precedence over
// WithAssetPath.
func WithStyleLoader(loader StyleLoader) Option {
	return func(c *Converter) {
		c.styleLoader = loader
	}
}

// WithRowPolicy sets how rows whose width differs from the header are
// handled: RowPolicyPad (default) or RowPolicyStrict.
func WithRowPolicy(policy string) Option {
	return func(c *Converter) {
		c.cfg.rowPolicy = policy
	}
}

// WithAllowEmpty renders an empty report for input without any rows
// instead of failing with ErrEmptyTable.
func WithAllowEmpty(allow bool) Option {
	return func(c *Converter) {
		c.cfg.allowEmpty = allow
	}
}

// WithDelimiter sets the field delimiter. Zero keeps ','.
func WithDelimiter(r rune) Option {
	return func(c *Converter) {
		c.cfg.delimiter = r
	}
}

// WithLazyQuotes accepts quotes appearing inside unquoted fields.
func WithLazyQuotes(lazy bool) Option {
	return func(c *Converter) {
		c.cfg.lazyQuotes = lazy
	}
}

// WithOverwrite controls whether ConvertFile may replace an existing
// output file. Default true.
func WithOverwrite(overwrite bool) Option {
	return func(c *Converter) {
		c.cfg.overwrite = overwrite
	}
}

// WithLogger sets the logger for row adjustments and stage timings.
// Default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}
