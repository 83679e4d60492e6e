package assets

import "errors"

// AssetResolver looks an asset up in a theme directory, then in the
// embedded assets. Only not-found errors fall through to the next loader.
type AssetResolver struct {
	loaders []AssetLoader // theme first when set, embedded last
}

// NewAssetResolver creates an AssetResolver. An empty themeDir uses the
// embedded assets only; an invalid one returns ErrInvalidBasePath.
func NewAssetResolver(themeDir string) (*AssetResolver, error) {
	if themeDir == "" {
		return &AssetResolver{loaders: []AssetLoader{NewEmbeddedLoader()}}, nil
	}

	theme, err := NewFilesystemLoader(themeDir)
	if err != nil {
		return nil, err
	}
	return &AssetResolver{loaders: []AssetLoader{theme, NewEmbeddedLoader()}}, nil
}

// LoadLayout loads a page layout, theme first.
func (r *AssetResolver) LoadLayout(name string) (string, error) {
	return r.first(func(l AssetLoader) (string, error) { return l.LoadLayout(name) })
}

// LoadStyle loads a stylesheet, theme first.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.first(func(l AssetLoader) (string, error) { return l.LoadStyle(name) })
}

// HasTheme reports whether a theme directory is configured.
func (r *AssetResolver) HasTheme() bool {
	return len(r.loaders) > 1
}

func (r *AssetResolver) first(load func(AssetLoader) (string, error)) (string, error) {
	var err error
	for _, l := range r.loaders {
		var content string
		content, err = load(l)
		if err == nil {
			return content, nil
		}
		if !errors.Is(err, ErrLayoutNotFound) && !errors.Is(err, ErrStyleNotFound) {
			return "", err
		}
	}
	return "", err
}

var _ AssetLoader = (*AssetResolver)(nil)
