package csv2html

import (
	"errors"
	"fmt"

	"github.com/alnah/go-csv2html/internal/assets"
)

// DefaultStyle is the name of the built-in stylesheet.
const DefaultStyle = assets.DefaultStyleName

// StyleLoader defines the contract for loading report stylesheets.
// Implementations may load from filesystem, embedded assets, a database, etc.
//
// The library provides NewStyleLoader() for filesystem-based loading with
// fallback to embedded styles. Implement this interface for custom backends.
type StyleLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// Styles lists the style names the loader serves.
	Styles() []string
}

// NewStyleLoader creates a StyleLoader for the given base path.
// If basePath is empty, returns a loader using only embedded styles.
// If basePath is set, {basePath}/styles/{name}.css takes precedence
// with fallback to embedded.
//
// Returns ErrInvalidAssetPath if basePath is set but not a valid, readable directory.
func NewStyleLoader(basePath string) (StyleLoader, error) {
	resolver, err := assets.NewStyleResolver(basePath)
	if err != nil {
		if errors.Is(err, assets.ErrInvalidBasePath) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		return nil, err
	}
	return resolver, nil
}
