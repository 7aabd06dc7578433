package assets

// DefaultStyleName selects the stylesheet built into the document shell.
// No loader serves it.
const DefaultStyleName = "default"

// StyleLoader loads report stylesheets by name.
type StyleLoader interface {
	// LoadStyle loads a stylesheet by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// Styles lists the available style names, sorted.
	Styles() []string
}
