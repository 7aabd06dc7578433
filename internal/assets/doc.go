// Package assets provides the stylesheets a report can be rendered with.
//
// # Loader Architecture
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - styles compiled into the binary (go:embed)
//	    ├── FilesystemLoader  - styles from a custom directory on disk
//	    └── StyleResolver     - custom directory first, embedded as fallback
//
// The built-in look of a report is not an asset: DefaultStyleName selects
// the stylesheet baked into the document shell. Named assets replace it.
//
// # Directory Structure
//
//	{basePath}/
//	└── styles/
//	    └── {name}.css
//
// # Security
//
// Style names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
