// Package assets provides page layouts and stylesheets for generated sites.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in layouts and styles (go:embed)
//	    ├── FilesystemLoader  - a theme directory on disk
//	    └── AssetResolver     - theme first, embedded as fallback
//
// AssetResolver lets a theme override a single layout or style while the
// rest keeps coming from the embedded defaults.
//
// # Directory Structure
//
//	{themeDir}/
//	├── layouts/
//	│   └── {name}.html    # page layout with {{ Title }} and {{ Content }}
//	└── styles/
//	    └── {name}.css     # stylesheet written as index.css when the site has none
//
// # Security
//
// Asset names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within the theme directory.
package assets
