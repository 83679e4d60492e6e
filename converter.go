package md2site

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/markdown"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.NativeConverter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ layoutLoader                  = (*assets.AssetResolver)(nil)
)

// layoutLoader is the part of assets.AssetLoader the converter needs.
type layoutLoader interface {
	LoadLayout(name string) (string, error)
}

// Converter orchestrates the markdown-to-page pipeline.
// Create with NewConverter and reuse it; Convert is safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	layouts       layoutLoader

	// page is set when a template overrides layouts.
	page *pipeline.PageTemplate

	mu     sync.Mutex
	byName map[string]*pipeline.PageTemplate
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithEngine, WithTemplate).
// Returns error if the engine is unknown or the template cannot be loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:          converterConfig{engine: EngineNative, layout: assets.DefaultLayoutName},
		preprocessor: &pipeline.CommonMarkPreprocessor{},
		byName:       make(map[string]*pipeline.PageTemplate),
	}

	for _, opt := range opts {
		opt(c)
	}

	// Create HTML converter if not injected (e.g., by tests)
	if c.htmlConverter == nil {
		conv, err := pipeline.NewHTMLConverter(c.cfg.engine, c.cfg.highlight)
		if err != nil {
			return nil, err
		}
		c.htmlConverter = conv
	}

	if c.layouts == nil {
		resolver, err := assets.NewAssetResolver(c.cfg.themeDir)
		if err != nil {
			return nil, fmt.Errorf("loading theme: %w", err)
		}
		c.layouts = resolver
	}

	if err := c.resolveTemplate(); err != nil {
		return nil, err
	}

	// Load the default layout eagerly so a bad name fails here, not per page.
	if c.page == nil {
		if _, err := c.layout(""); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Convert runs the full pipeline and returns the page and its metadata.
// The context is used for cancellation.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	fm, body, err := pipeline.SplitFrontMatter(mdContent)
	if err != nil {
		return nil, fmt.Errorf("reading front matter: %w", err)
	}

	title, err := c.resolveTitle(fm, body, input.Name)
	if err != nil {
		return nil, err
	}

	fragment, err := c.htmlConverter.ToHTML(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	if c.cfg.rewriteLinks {
		fragment, err = pipeline.RewriteMarkdownLinks(fragment)
		if err != nil {
			return nil, fmt.Errorf("rewriting links: %w", err)
		}
	}

	tmpl, err := c.layout(fm.Layout)
	if err != nil {
		return nil, err
	}

	return &ConvertResult{
		HTML:     []byte(tmpl.Render(title, fragment)),
		Fragment: fragment,
		Title:    title,
		Layout:   fm.Layout,
		Draft:    fm.Draft,
	}, nil
}

// Render compiles a document with the native engine and returns the bare
// fragment, rooted at a single <div>.
func Render(document string) (string, error) {
	return markdown.Render(document)
}

// resolveTemplate loads a template that overrides layouts, if one is set.
func (c *Converter) resolveTemplate() error {
	raw := c.cfg.template
	if raw == "" && c.cfg.templateFile != "" {
		content, err := os.ReadFile(c.cfg.templateFile) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading template file %q: %w", c.cfg.templateFile, err)
		}
		if len(content) == 0 {
			return fmt.Errorf("%w: %q is empty", ErrInvalidTemplate, c.cfg.templateFile)
		}
		raw = string(content)
	}
	if raw == "" {
		return nil
	}

	page, err := pipeline.NewPageTemplate(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTemplate, err)
	}
	c.page = page
	return nil
}

// layout returns the template for a page. An empty name selects the
// configured default. Parsed layouts are cached by name.
func (c *Converter) layout(name string) (*pipeline.PageTemplate, error) {
	if c.page != nil {
		return c.page, nil
	}
	if name == "" {
		name = c.cfg.layout
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if tmpl, ok := c.byName[name]; ok {
		return tmpl, nil
	}

	raw, err := c.layouts.LoadLayout(name)
	if err != nil {
		return nil, fmt.Errorf("loading layout %q: %w", name, err)
	}
	tmpl, err := pipeline.NewPageTemplate(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: layout %q: %w", ErrInvalidTemplate, name, err)
	}
	c.byName[name] = tmpl
	return tmpl, nil
}

// resolveTitle picks the page title: front matter, then the first
// level-one heading, then the input name unless titles are strict.
func (c *Converter) resolveTitle(fm pipeline.FrontMatter, body, name string) (string, error) {
	if fm.Title != "" {
		return fm.Title, nil
	}

	title, err := pipeline.ExtractTitle(body)
	if err == nil {
		return title, nil
	}
	if !errors.Is(err, pipeline.ErrNoTitle) || c.cfg.strictTitle {
		return "", err
	}
	return titleFromName(name), nil
}

// titleFromName derives a title from a source path: "blog/first-post.md"
// becomes "first-post".
func titleFromName(name string) string {
	if name == "" {
		return ""
	}
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// validateInput checks that required fields are present.
func (c *Converter) validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	return nil
}
