package assets

// Asset kinds, as directory names and file extensions.
const (
	layoutsDir = "layouts"
	stylesDir  = "styles"
	layoutExt  = ".html"
	styleExt   = ".css"
)

// AssetLoader loads page layouts and stylesheets by name.
type AssetLoader interface {
	// LoadLayout returns ErrLayoutNotFound if the layout doesn't exist.
	LoadLayout(name string) (string, error)

	// LoadStyle returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)
}
