package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrInvalidFlags indicates the command line could not be parsed.
var ErrInvalidFlags = errors.New("invalid flags")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds document metadata flags.
type documentFlags struct {
	title string
	intro string // Markdown file rendered above the report
}

// csvFlags holds CSV dialect flags.
type csvFlags struct {
	delimiter  string
	lazyQuotes bool
}

// rowFlags holds row policy flags.
type rowFlags struct {
	policy     string
	allowEmpty bool
}

// assetFlags holds style-related flags.
type assetFlags struct {
	style     string // Name or path for CSS
	assetPath string // Directory of custom styles
}

// outputFlags holds output file flags.
type outputFlags struct {
	noOverwrite bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	document documentFlags
	csv      csvFlags
	rows     rowFlags
	assets   assetFlags
	output   outputFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and conversion details")
}

// addDocumentFlags adds document flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "document title (default \"Feedback from European Dojo\")")
	fs.StringVar(&f.intro, "intro", "", "markdown file rendered above the report")
}

// addCSVFlags adds CSV dialect flags to a FlagSet.
func addCSVFlags(fs *flag.FlagSet, f *csvFlags) {
	fs.StringVarP(&f.delimiter, "delimiter", "d", "", "field delimiter (default \",\")")
	fs.BoolVar(&f.lazyQuotes, "lazy-quotes", false, "accept stray quotes in fields")
}

// addRowFlags adds row policy flags to a FlagSet.
func addRowFlags(fs *flag.FlagSet, f *rowFlags) {
	fs.StringVar(&f.policy, "row-policy", "", "mismatched row widths: pad, strict")
	fs.BoolVar(&f.allowEmpty, "allow-empty", false, "render an empty report for empty input")
}

// addAssetFlags adds style flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "style name or CSS file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory of custom styles")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.noOverwrite, "no-overwrite", false, "refuse to replace an existing output file")
}

// newConvertFlagSet registers every convert flag on a fresh FlagSet.
// Shared by parseConvertFlags and completion generation.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addCSVFlags(fs, &f.csv)
	addRowFlags(fs, &f.rows)
	addAssetFlags(fs, &f.assets)
	addOutputFlags(fs, &f.output)

	return fs
}

// parseConvertFlags parses convert arguments (without the command name).
// Returns the flags, the FlagSet (for Changed lookups), and the positionals.
// Returns flag.ErrHelp unwrapped when -h/--help is given.
func parseConvertFlags(args []string) (*convertFlags, *flag.FlagSet, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, nil, err
		}
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	return f, fs, fs.Args(), nil
}
