package assets

import (
	"errors"
	"sort"
)

// StyleResolver combines custom and embedded loaders. When a custom
// directory is configured it is tried first; only a not-found result
// falls back to the embedded styles.
type StyleResolver struct {
	custom   StyleLoader // nil if no custom path configured
	embedded StyleLoader
}

// NewStyleResolver creates a StyleResolver.
// If customBasePath is empty, only embedded styles are used.
// Returns an error if customBasePath is set but invalid.
func NewStyleResolver(customBasePath string) (*StyleResolver, error) {
	resolver := &StyleResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadStyle loads a stylesheet, trying the custom loader first if available.
func (r *StyleResolver) LoadStyle(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadStyle(name)
	}

	content, err := r.custom.LoadStyle(name)
	if err == nil {
		return content, nil
	}

	// Validation and I/O errors are not masked by the fallback.
	if !errors.Is(err, ErrStyleNotFound) {
		return "", err
	}

	return r.embedded.LoadStyle(name)
}

// Styles lists every style the resolver can serve, including
// DefaultStyleName, deduplicated and sorted.
func (r *StyleResolver) Styles() []string {
	seen := map[string]bool{DefaultStyleName: true}
	names := []string{DefaultStyleName}
	add := func(list []string) {
		for _, name := range list {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	if r.custom != nil {
		add(r.custom.Styles())
	}
	add(r.embedded.Styles())
	sort.Strings(names)
	return names
}

// HasCustomLoader returns true if a custom style directory is configured.
func (r *StyleResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ StyleLoader = (*StyleResolver)(nil)
