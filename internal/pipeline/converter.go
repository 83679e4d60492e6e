package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-md2site/internal/markdown"
)

// Engine names accepted by NewHTMLConverter.
const (
	EngineNative   = "native"
	EngineGoldmark = "goldmark"
)

var (
	// ErrHTMLConversion indicates HTML conversion failed.
	ErrHTMLConversion = errors.New("HTML conversion failed")

	// ErrUnknownEngine indicates an engine name NewHTMLConverter does not know.
	ErrUnknownEngine = errors.New("unknown render engine")
)

// HTMLConverter abstracts Markdown to HTML fragment conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// NewHTMLConverter returns the converter registered under engine. An empty
// engine selects EngineNative. highlight only affects EngineGoldmark.
func NewHTMLConverter(engine string, highlight bool) (HTMLConverter, error) {
	switch engine {
	case "", EngineNative:
		return NewNativeConverter(), nil
	case EngineGoldmark:
		return NewGoldmarkConverter(GoldmarkConfig{Highlight: highlight}), nil
	default:
		return nil, fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownEngine, engine, EngineNative, EngineGoldmark)
	}
}

// NativeConverter converts Markdown with the built-in block compiler. Its
// output is a single <div> holding one element per block.
type NativeConverter struct{}

// NewNativeConverter creates a NativeConverter.
func NewNativeConverter() *NativeConverter {
	return &NativeConverter{}
}

// ToHTML compiles content to a fragment. Compilation is synchronous and
// bounded by input size, so the context is only checked before starting.
func (c *NativeConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fragment, err := markdown.Render(content)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTMLConversion, err)
	}
	return fragment, nil
}

// GoldmarkConfig configures a GoldmarkConverter.
type GoldmarkConfig struct {
	// Highlight enables chroma syntax highlighting of fenced code blocks,
	// emitted as CSS classes.
	Highlight bool
}

// GoldmarkConverter converts Markdown to HTML using goldmark (CommonMark + GFM).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions,
// footnotes and heading IDs.
func NewGoldmarkConverter(cfg GoldmarkConfig) *GoldmarkConverter {
	extensions := []goldmark.Extender{
		extension.GFM,
		extension.Footnote,
	}
	if cfg.Highlight {
		extensions = append(extensions, highlighting.NewHighlighting(
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true),
			),
		))
	}

	md := goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// Raw HTML in pages is not rendered.
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
// Goldmark has no context support, so conversion runs in a goroutine and the
// caller stops waiting when ctx is done.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// Compile-time interface checks.
var (
	_ HTMLConverter = (*NativeConverter)(nil)
	_ HTMLConverter = (*GoldmarkConverter)(nil)
)
