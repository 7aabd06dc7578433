package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Sentinel errors for loading.
var (
	ErrParse            = errors.New("failed to parse CSV")
	ErrInvalidDelimiter = errors.New("invalid CSV delimiter")
)

// DefaultDelimiter separates fields when Options.Delimiter is zero.
const DefaultDelimiter = ','

// Options tunes the CSV reader.
type Options struct {
	Delimiter  rune // zero means DefaultDelimiter
	LazyQuotes bool // accept bare quotes inside unquoted fields
}

// ValidateDelimiter reports whether r can separate CSV fields.
func ValidateDelimiter(r rune) error {
	if r == '\r' || r == '\n' || r == '"' || r == utf8.RuneError || !utf8.ValidRune(r) {
		return fmt.Errorf("%w: %q", ErrInvalidDelimiter, r)
	}
	return nil
}

// Load parses all of r into a Table. A leading byte order mark is
// honored: UTF-8 BOMs are stripped and UTF-16 input is decoded to UTF-8.
// Blank lines are skipped. Records may have differing widths; row width
// is checked later, against the header, by the row policy.
func Load(r io.Reader, opts Options) (Table, error) {
	delim := opts.Delimiter
	if delim == 0 {
		delim = DefaultDelimiter
	}
	if err := ValidateDelimiter(delim); err != nil {
		return nil, err
	}

	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	cr := csv.NewReader(decoded)
	cr.Comma = delim
	cr.LazyQuotes = opts.LazyQuotes
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	t := make(Table, len(records))
	for i, rec := range records {
		t[i] = Row(rec)
	}
	return t, nil
}

// LoadFile reads the whole file at path and parses it with Load.
func LoadFile(path string, opts Options) (Table, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided input path
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f, opts)
}
