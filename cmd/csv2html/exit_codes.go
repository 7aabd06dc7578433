package main

import (
	"errors"
	"os"

	csv2html "github.com/alnah/go-csv2html"
	"github.com/alnah/go-csv2html/internal/assets"
	"github.com/alnah/go-csv2html/internal/config"
	"github.com/alnah/go-csv2html/internal/logging"
)

// Exit codes for the csv2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid arguments, flags, config, or validation
	ExitIO      = 3 // Missing input, unwritable output
	ExitData    = 4 // Empty table, ragged row, malformed CSV
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Data errors (exit 4)
	if errors.Is(err, csv2html.ErrEmptyTable) ||
		errors.Is(err, csv2html.ErrRaggedRow) ||
		errors.Is(err, csv2html.ErrParse) {
		return ExitData
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, csv2html.ErrReadInput) ||
		errors.Is(err, csv2html.ErrWriteOutput) ||
		errors.Is(err, csv2html.ErrStyleFile) ||
		errors.Is(err, ErrIntroFile) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrEnvConfig) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, logging.ErrInvalidLevel) ||
		errors.Is(err, csv2html.ErrInvalidRowPolicy) ||
		errors.Is(err, csv2html.ErrInvalidDelimiter) ||
		errors.Is(err, csv2html.ErrStyleNotFound) ||
		errors.Is(err, csv2html.ErrInvalidAssetPath) ||
		errors.Is(err, assets.ErrInvalidAssetName) {
		return ExitUsage
	}

	return ExitGeneral
}
