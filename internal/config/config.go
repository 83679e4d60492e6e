// Package config loads and validates site configuration files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// MaxPathLength bounds every path field.
const MaxPathLength = 4096

// userConfigDirName is the per-user config directory under os.UserConfigDir.
const userConfigDirName = "go-md2site"

// Render engines accepted in render.engine.
var validEngines = []string{"native", "goldmark"}

// Config holds all configuration for a site build.
type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Render RenderConfig `yaml:"render"`
	Build  BuildConfig  `yaml:"build"`
}

// SiteConfig locates the site's inputs and outputs.
type SiteConfig struct {
	ContentDir string `yaml:"contentDir"` // Markdown sources
	StaticDir  string `yaml:"staticDir"`  // copied verbatim into PublicDir
	PublicDir  string `yaml:"publicDir"`  // generated site, replaced on every build
	Template   string `yaml:"template"`   // page template file; overrides Layout
	Layout     string `yaml:"layout"`     // layout name from ThemeDir or the embedded set
	Style      string `yaml:"style"`      // stylesheet written as index.css when static has none
	ThemeDir   string `yaml:"themeDir"`   // custom layouts/ and styles/ (empty = embedded only)
}

// RenderConfig selects how Markdown becomes HTML.
type RenderConfig struct {
	Engine       string `yaml:"engine"`       // "native" or "goldmark"
	RewriteLinks bool   `yaml:"rewriteLinks"` // relative .md links point to .html pages
	Highlight    bool   `yaml:"highlight"`    // chroma highlighting, goldmark only
}

// BuildConfig controls a site build.
type BuildConfig struct {
	Workers     int  `yaml:"workers"`     // 0 = auto
	StrictTitle bool `yaml:"strictTitle"` // pages without "# " heading fail
	Drafts      bool `yaml:"drafts"`      // include pages marked draft
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			ContentDir: "content",
			StaticDir:  "static",
			PublicDir:  "public",
			Layout:     "default",
			Style:      "default",
		},
		Render: RenderConfig{Engine: "native"},
	}
}

// Validate checks enumerations, bounds and path lengths.
// Called by LoadConfig; also usable on configs built in code.
func (c *Config) Validate() error {
	paths := []struct {
		field string
		value string
	}{
		{"site.contentDir", c.Site.ContentDir},
		{"site.staticDir", c.Site.StaticDir},
		{"site.publicDir", c.Site.PublicDir},
		{"site.template", c.Site.Template},
		{"site.themeDir", c.Site.ThemeDir},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.field, p.value, MaxPathLength); err != nil {
			return err
		}
	}

	if c.Site.ContentDir == "" {
		return fmt.Errorf("%w: site.contentDir: required", ErrInvalidValue)
	}
	if c.Site.PublicDir == "" {
		return fmt.Errorf("%w: site.publicDir: required", ErrInvalidValue)
	}
	if filepath.Clean(c.Site.ContentDir) == filepath.Clean(c.Site.PublicDir) {
		return fmt.Errorf("%w: site.publicDir: must differ from site.contentDir", ErrInvalidValue)
	}

	if c.Render.Engine != "" && !slices.Contains(validEngines, c.Render.Engine) {
		return fmt.Errorf("%w: render.engine: %q (must be %s)",
			ErrInvalidValue, c.Render.Engine, strings.Join(validEngines, " or "))
	}

	if c.Build.Workers < 0 {
		return fmt.Errorf("%w: build.workers: must be >= 0, got %d", ErrInvalidValue, c.Build.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys missing from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists where a config name is looked up, in order: the current
// directory, then the per-user config directory, each with .yaml then .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, userConfigDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing SearchPaths entry.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
