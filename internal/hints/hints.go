// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"encoding/csv"
	"errors"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and the user config location among the searched paths.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-csv2html") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForInputNotFound returns a hint for a missing input file.
func ForInputNotFound() string {
	return format("the input file comes before the output file: csv2html <input.csv> <output.html>")
}

// ForEmptyTable returns a hint for inputs without a header row.
func ForEmptyTable() string {
	return format("the first row must hold the column headers; use --allow-empty to render an empty report")
}

// ForRaggedRow returns a hint for rows rejected by the strict row policy.
func ForRaggedRow() string {
	return format("fix the row or use --row-policy pad to pad short rows and trim long ones")
}

// ForCSVParse returns hints for CSV syntax errors. Quote errors suggest
// --lazy-quotes; every parse error suggests checking the delimiter.
func ForCSVParse(err error) string {
	var hints []string
	if errors.Is(err, csv.ErrBareQuote) || errors.Is(err, csv.ErrQuote) {
		hints = append(hints, "use --lazy-quotes to accept stray quotes")
	}
	hints = append(hints, "check the field delimiter (-d ';' for semicolon exports)")
	return formatHints(hints)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForFileExists returns a hint when the overwrite guard refuses a write.
func ForFileExists() string {
	return format("remove the file or set output.overwrite: true in the config")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
