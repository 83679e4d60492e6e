package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader loads layouts and styles from a theme directory laid out
// as {theme}/layouts/*.html and {theme}/styles/*.css.
type FilesystemLoader struct {
	root string // absolute, symlinks resolved
}

// NewFilesystemLoader creates a FilesystemLoader rooted at themeDir.
// Returns ErrInvalidBasePath if themeDir is not a readable directory.
func NewFilesystemLoader(themeDir string) (*FilesystemLoader, error) {
	if themeDir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	root, err := resolvePath(themeDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	if _, err := os.ReadDir(root); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, root)
		case !isDir(root):
			return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, root)
		default:
			return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
		}
	}

	return &FilesystemLoader{root: root}, nil
}

// LoadLayout reads {theme}/layouts/{name}.html.
func (f *FilesystemLoader) LoadLayout(name string) (string, error) {
	return f.load(layoutsDir, name, layoutExt, ErrLayoutNotFound)
}

// LoadStyle reads {theme}/styles/{name}.css.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	return f.load(stylesDir, name, styleExt, ErrStyleNotFound)
}

func (f *FilesystemLoader) load(dir, name, ext string, notFound error) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	target := filepath.Join(f.root, dir, name+ext)
	if !f.contains(target) {
		return "", fmt.Errorf("%w: %s/%s%s leaves the theme directory", ErrPathTraversal, dir, name, ext)
	}

	data, err := os.ReadFile(target) // #nosec G304 -- contained in theme root
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", notFound, name)
	case err != nil:
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(data), nil
}

// contains reports whether target, once symlinks are resolved, lies under
// the theme root. A missing target is checked as written.
func (f *FilesystemLoader) contains(target string) bool {
	resolved, err := resolvePath(target)
	if err != nil {
		return false
	}
	return strings.HasPrefix(resolved, f.root+string(filepath.Separator))
}

// resolvePath returns the absolute form of path with symlinks resolved when
// the path exists.
func resolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

var _ AssetLoader = (*FilesystemLoader)(nil)
