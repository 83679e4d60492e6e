package assets

import (
	"io/fs"
	"path"
	"strings"
)

// Names of the built-in assets.
const (
	DefaultLayoutName = "default"
	DefaultStyleName  = "default"
)

// defaultLoader serves the package-level helpers.
var defaultLoader = NewEmbeddedLoader()

// LoadLayout loads an embedded page layout by name, without the .html
// extension. Returns ErrLayoutNotFound or ErrInvalidAssetName.
func LoadLayout(name string) (string, error) {
	return defaultLoader.LoadLayout(name)
}

// LoadStyle loads an embedded stylesheet by name, without the .css
// extension. Returns ErrStyleNotFound or ErrInvalidAssetName.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LayoutNames lists the embedded layouts in lexical order.
func LayoutNames() []string {
	matches, err := fs.Glob(embedded, layoutsDir+"/*"+layoutExt)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), layoutExt))
	}
	return names
}
