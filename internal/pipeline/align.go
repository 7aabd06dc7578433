package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for row alignment.
var (
	ErrRaggedRow        = errors.New("row width differs from header width")
	ErrInvalidRowPolicy = errors.New("invalid row policy")
)

// RowPolicy decides what happens to a data row whose cell count differs
// from the header count.
type RowPolicy string

// Row policies.
const (
	// RowPolicyPad pads short rows with empty cells and drops cells past
	// the last header.
	RowPolicyPad RowPolicy = "pad"

	// RowPolicyStrict rejects any row whose width differs from the headers.
	RowPolicyStrict RowPolicy = "strict"
)

// DefaultRowPolicy is used when no policy is configured.
const DefaultRowPolicy = RowPolicyPad

// ParseRowPolicy parses a policy name (case-insensitive). Empty means default.
func ParseRowPolicy(s string) (RowPolicy, error) {
	switch RowPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultRowPolicy, nil
	case RowPolicyPad:
		return RowPolicyPad, nil
	case RowPolicyStrict:
		return RowPolicyStrict, nil
	default:
		return "", fmt.Errorf("%w: %q (must be pad or strict)", ErrInvalidRowPolicy, s)
	}
}

// AlignRow returns cells sized to len(headers) according to policy.
// adjusted reports whether cells had to be padded or truncated.
// cells is never modified; a padded row is a fresh slice.
func AlignRow(headers, cells []string, policy RowPolicy) (aligned []string, adjusted bool, err error) {
	width := len(headers)
	if len(cells) == width {
		return cells, false, nil
	}

	switch policy {
	case RowPolicyStrict:
		return nil, false, fmt.Errorf("%w: %d cells, %d headers", ErrRaggedRow, len(cells), width)
	case RowPolicyPad:
		if len(cells) > width {
			return cells[:width:width], true, nil
		}
		padded := make([]string, width)
		copy(padded, cells)
		return padded, true, nil
	default:
		return nil, false, fmt.Errorf("%w: %q", ErrInvalidRowPolicy, policy)
	}
}
