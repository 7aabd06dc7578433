package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Returns ErrInvalidAssetName if the name is empty or contains path separators,
// dots (which could allow extension manipulation), or traversal characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// styleName strips the .css extension from a directory entry name.
// ok is false for entries that are not stylesheets.
func styleName(fileName string) (name string, ok bool) {
	name, ok = strings.CutSuffix(fileName, ".css")
	if !ok || name == "" || ValidateAssetName(name) != nil {
		return "", false
	}
	return name, true
}
