package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLengthMismatch indicates RenderRow was given headers and cells of
// different lengths. Callers align rows with AlignRow first.
var ErrLengthMismatch = errors.New("headers and cells differ in length")

// rowSeparator separates consecutive definition lists in the report.
const rowSeparator = "<hr />\n"

// RenderRow renders one data row as a definition list:
//
//	<dl><dt>{header}</dt>
//	<dd><div>{escaped cell}</div></dd>
//	...</dl>
//
// Headers are emitted verbatim; cells go through ProcessText.
func RenderRow(headers, cells []string) (string, error) {
	if len(headers) != len(cells) {
		return "", fmt.Errorf("%w: %d headers, %d cells", ErrLengthMismatch, len(headers), len(cells))
	}

	var b strings.Builder
	b.WriteString("<dl>")
	for i, header := range headers {
		b.WriteString("<dt>")
		b.WriteString(header)
		b.WriteString("</dt>\n<dd><div>")
		b.WriteString(ProcessText(cells[i]))
		b.WriteString("</div></dd>\n")
	}
	b.WriteString("</dl>\n\n")
	return b.String(), nil
}

// RenderReport renders every row with RenderRow, in order, and joins the
// fragments with "<hr />\n". Zero rows render as "".
func RenderReport(headers []string, rows [][]string) (string, error) {
	fragments := make([]string, len(rows))
	for i, row := range rows {
		fragment, err := RenderRow(headers, row)
		if err != nil {
			return "", fmt.Errorf("row %d: %w", i+1, err)
		}
		fragments[i] = fragment
	}
	return strings.Join(fragments, rowSeparator), nil
}
