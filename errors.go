package csv2html

import (
	"errors"

	"github.com/alnah/go-csv2html/internal/assets"
	"github.com/alnah/go-csv2html/internal/fileutil"
	"github.com/alnah/go-csv2html/internal/pipeline"
	"github.com/alnah/go-csv2html/internal/table"
)

// Sentinel errors for library operations.
var (
	ErrReadInput   = errors.New("failed to read input")
	ErrWriteOutput = errors.New("failed to write output")
	ErrStyleFile   = errors.New("failed to read style file")

	// Data errors.
	ErrEmptyTable       = table.ErrEmptyTable
	ErrParse            = table.ErrParse
	ErrInvalidDelimiter = table.ErrInvalidDelimiter
	ErrRaggedRow        = pipeline.ErrRaggedRow
	ErrInvalidRowPolicy = pipeline.ErrInvalidRowPolicy
	ErrIntroConversion  = pipeline.ErrIntroConversion

	// Output errors.
	ErrFileExists = fileutil.ErrFileExists

	// Asset loading errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
