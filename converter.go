package csv2html

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/alnah/go-csv2html/internal/fileutil"
	"github.com/alnah/go-csv2html/internal/logging"
	"github.com/alnah/go-csv2html/internal/pipeline"
	"github.com/alnah/go-csv2html/internal/table"
)

// Compile-time interface implementation checks.
var _ pipeline.IntroRenderer = (*pipeline.GoldmarkIntro)(nil)

// Converter turns CSV feedback exports into HTML definition-list reports.
// Create with NewConverter and reuse it: Convert holds no state between
// calls and is safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	styleLoader   StyleLoader
	introRenderer pipeline.IntroRenderer
	logger        *slog.Logger
	rowPolicy     pipeline.RowPolicy
	shell         pipeline.Shell
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTitle, WithStyle, WithRowPolicy).
// Returns an error if an option is invalid or the style cannot be loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:           converterConfig{overwrite: true},
		introRenderer: pipeline.NewGoldmarkIntro(),
		logger:        logging.Discard(),
	}

	for _, opt := range opts {
		opt(c)
	}

	policy, err := pipeline.ParseRowPolicy(c.cfg.rowPolicy)
	if err != nil {
		return nil, err
	}
	c.rowPolicy = policy

	if c.cfg.delimiter != 0 {
		if err := table.ValidateDelimiter(c.cfg.delimiter); err != nil {
			return nil, err
		}
	}

	if c.styleLoader == nil {
		loader, err := NewStyleLoader(c.cfg.assetPath)
		if err != nil {
			return nil, err
		}
		c.styleLoader = loader
	}

	stylesheet, err := c.resolveStyle()
	if err != nil {
		return nil, err
	}
	c.shell = pipeline.Shell{Title: c.cfg.title, Stylesheet: stylesheet}

	return c, nil
}

// Convert parses input.CSV and returns the complete HTML document.
// The first record supplies the headers; every later record becomes one
// definition list. The context is checked between stages.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	start := time.Now()
	log := c.logger
	if input.Source != "" {
		log = log.With("source", input.Source)
	}

	tbl, err := table.Load(bytes.NewReader(input.CSV), table.Options{
		Delimiter:  c.cfg.delimiter,
		LazyQuotes: c.cfg.lazyQuotes,
	})
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Debug("parsed csv", "records", len(tbl))

	res := &ConvertResult{Columns: tbl.Width()}

	var report string
	headers, commentary, err := tbl.Split()
	switch {
	case errors.Is(err, table.ErrEmptyTable) && c.cfg.allowEmpty:
		log.Warn("input has no rows, rendering an empty report")
	case err != nil:
		return nil, err
	default:
		rows, adjusted, err := c.alignRows(log, headers, commentary)
		if err != nil {
			return nil, err
		}
		res.Rows = len(rows)
		res.Adjusted = adjusted

		report, err = pipeline.RenderReport(headers, rows)
		if err != nil {
			return nil, fmt.Errorf("rendering report: %w", err)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	intro, err := c.introRenderer.RenderIntro(ctx, c.cfg.intro)
	if err != nil {
		return nil, err
	}

	res.HTML = []byte(c.shell.Assemble(pipeline.ComposeBody(intro, report)))

	log.Debug("converted",
		"rows", res.Rows,
		"columns", res.Columns,
		"adjusted", res.Adjusted,
		"bytes", len(res.HTML),
		"elapsed", time.Since(start),
	)
	return res, nil
}

// ConvertFile reads the CSV file at inputPath, converts it, and writes the
// document to outputPath atomically. Missing parent directories are created.
// Nothing is written when conversion fails.
func (c *Converter) ConvertFile(ctx context.Context, inputPath, outputPath string) (*ConvertResult, error) {
	data, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided input path
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	res, err := c.Convert(ctx, Input{CSV: data, Source: inputPath})
	if err != nil {
		return nil, err
	}

	if err := fileutil.WriteFileAtomic(outputPath, res.HTML, c.cfg.overwrite); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return res, nil
}

// Styles lists the style names WithStyle accepts by name, sorted.
func (c *Converter) Styles() []string {
	names := c.styleLoader.Styles()
	if !slices.Contains(names, DefaultStyle) {
		names = append(names, DefaultStyle)
	}
	slices.Sort(names)
	return names
}

// alignRows applies the row policy to every commentary row. Record numbers
// in logs and errors are 1-based and count the header as record 1.
func (c *Converter) alignRows(log *slog.Logger, headers table.Row, commentary []table.Row) ([][]string, int, error) {
	rows := make([][]string, len(commentary))
	adjusted := 0
	for i, row := range commentary {
		record := i + table.HeaderRows + 1
		aligned, changed, err := pipeline.AlignRow(headers, row, c.rowPolicy)
		if err != nil {
			return nil, 0, fmt.Errorf("record %d: %w", record, err)
		}
		if changed {
			adjusted++
			log.Warn("row width differs from header",
				"record", record,
				"cells", len(row),
				"headers", len(headers),
			)
		}
		rows[i] = aligned
	}
	return rows, adjusted, nil
}

// resolveStyle turns the style input (name or path) into CSS.
// "" means the built-in stylesheet.
func (c *Converter) resolveStyle() (string, error) {
	input := c.cfg.styleInput
	if input == "" || input == DefaultStyle {
		return "", nil
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("%w %q: %w", ErrStyleFile, input, err)
		}
		return string(content), nil
	}

	css, err := c.styleLoader.LoadStyle(input)
	if err != nil {
		return "", fmt.Errorf("loading style %q: %w", input, err)
	}
	return css, nil
}
