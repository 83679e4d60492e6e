package md2site

import "github.com/alnah/go-md2site/internal/pipeline"

// Rendering engines accepted by WithEngine.
const (
	EngineNative   = pipeline.EngineNative
	EngineGoldmark = pipeline.EngineGoldmark
)

// Input contains the data for a single conversion.
type Input struct {
	Markdown string // Required: markdown content
	Name     string // Optional: source path, used as fallback title and in errors
}

// ConvertResult contains the output of a conversion.
type ConvertResult struct {
	HTML     []byte // full page
	Fragment string // converted body, before layout
	Title    string
	Layout   string // layout requested by front matter, empty for the default
	Draft    bool
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	engine       string
	highlight    bool
	rewriteLinks bool
	strictTitle  bool
	template     string
	templateFile string
	layout       string
	themeDir     string
}

// WithEngine selects the Markdown engine: EngineNative (default) or
// EngineGoldmark. Unknown names make NewConverter fail with ErrUnknownEngine.
func WithEngine(name string) Option {
	return func(c *Converter) {
		c.cfg.engine = name
	}
}

// WithHighlighting enables syntax highlighting of fenced code.
// Only the goldmark engine highlights; the native engine ignores it.
func WithHighlighting(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.highlight = enabled
	}
}

// WithLinkRewrite rewrites relative links to .md files into .html links.
func WithLinkRewrite(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.rewriteLinks = enabled
	}
}

// WithStrictTitle makes a document without a title an error (ErrNoTitle)
// instead of falling back to the input name.
func WithStrictTitle(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.strictTitle = enabled
	}
}

// WithTemplate sets the page template content. It overrides layouts.
func WithTemplate(raw string) Option {
	return func(c *Converter) {
		c.cfg.template = raw
	}
}

// WithTemplateFile reads the page template from a file. It overrides
// layouts, and WithTemplate takes precedence over it.
func WithTemplateFile(path string) Option {
	return func(c *Converter) {
		c.cfg.templateFile = path
	}
}

// WithLayout sets the default layout name (without extension).
func WithLayout(name string) Option {
	return func(c *Converter) {
		c.cfg.layout = name
	}
}

// WithThemeDir loads layouts from dir/layouts before the embedded ones.
func WithThemeDir(dir string) Option {
	return func(c *Converter) {
		c.cfg.themeDir = dir
	}
}
