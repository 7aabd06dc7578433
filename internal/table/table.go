// Package table loads CSV exports into an in-memory table of string cells.
package table

import (
	"errors"
	"fmt"

	"github.com/alnah/go-csv2html/internal/pipeline"
)

// HeaderRows is the number of leading rows that hold column labels.
const HeaderRows = 1

// ErrEmptyTable indicates the input held no rows, so there is no header row.
var ErrEmptyTable = errors.New("table has no header row")

// Row is one parsed CSV record.
type Row []string

// Table is the parsed CSV input, in file order. It is not modified after
// Load returns.
type Table []Row

// Split separates the header row from the commentary rows.
// An empty table returns ErrEmptyTable.
func (t Table) Split() (headers Row, commentary []Row, err error) {
	if len(t) == 0 {
		return nil, nil, ErrEmptyTable
	}
	split, err := pipeline.SplitAt(HeaderRows, t)
	if err != nil {
		return nil, nil, fmt.Errorf("splitting header: %w", err)
	}
	return split.Prefix[0], split.Suffix, nil
}

// Width returns the number of header cells, or 0 for an empty table.
func (t Table) Width() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}
