package markdown

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alnah/go-md2site/internal/htmlnode"
)

// RootTag is the tag of the node wrapping a compiled document.
const RootTag = "div"

// spanTags maps the simple span kinds to their HTML tag.
var spanTags = map[SpanKind]string{
	SpanPlain:  "",
	SpanBold:   "b",
	SpanItalic: "i",
	SpanCode:   "code",
}

// Render compiles a document and serializes the result.
func Render(document string) (string, error) {
	root, err := ToHTMLNode(document)
	if err != nil {
		return "", err
	}
	return root.Serialize()
}

// ToHTMLNode compiles every block of a document, in order, under a root <div>.
func ToHTMLNode(document string) (*htmlnode.Parent, error) {
	blocks := Parse(document)
	children := make([]htmlnode.Node, 0, len(blocks))
	for i, block := range blocks {
		node, err := CompileBlock(block)
		if err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i+1, block.Type, err)
		}
		children = append(children, node)
	}
	return htmlnode.NewParent(RootTag, children), nil
}

// CompileBlock converts a classified block into a node subtree.
func CompileBlock(block Block) (htmlnode.Node, error) {
	switch block.Type {
	case BlockHeading:
		return compileHeading(block), nil
	case BlockCode:
		return compileCode(block), nil
	case BlockQuote:
		return compileQuote(block), nil
	case BlockUnorderedList:
		return compileList(block, "ul", stripUnorderedMarker)
	case BlockOrderedList:
		return compileList(block, "ol", stripOrderedMarker)
	case BlockParagraph:
		children, err := inlineNodes(block.Text)
		if err != nil {
			return nil, err
		}
		return htmlnode.NewParent("p", children), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnrecognizedBlockType, block.Type)
	}
}

// compileHeading keeps the heading text verbatim: no inline styles apply.
func compileHeading(block Block) htmlnode.Node {
	line, _, _ := strings.Cut(block.Text, "\n")
	marker, text, _ := strings.Cut(line, " ")

	level := block.Level
	if level == 0 {
		level = len(marker)
	}
	return htmlnode.NewLeaf("h"+strconv.Itoa(level), text)
}

// compileCode strips the fences only: the newline after the opening fence
// stays part of the code.
func compileCode(block Block) htmlnode.Node {
	code := strings.TrimSuffix(strings.TrimPrefix(block.Text, codeFence), codeFence)
	return htmlnode.NewParent("pre", []htmlnode.Node{htmlnode.NewLeaf("code", code)})
}

func compileQuote(block Block) htmlnode.Node {
	lines := strings.Split(block.Text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, quoteMarker)
	}
	return htmlnode.NewParent("blockquote", []htmlnode.Node{htmlnode.Text(strings.Join(lines, "\n"))})
}

// compileList builds one <li> per line. strip removes the list marker from
// the n-th line, counting from 1.
func compileList(block Block, tag string, strip func(line string, n int) string) (htmlnode.Node, error) {
	lines := strings.Split(block.Text, "\n")
	items := make([]htmlnode.Node, 0, len(lines))
	for i, line := range lines {
		children, err := inlineNodes(strip(line, i+1))
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		items = append(items, htmlnode.NewParent("li", children))
	}
	return htmlnode.NewParent(tag, items), nil
}

func stripUnorderedMarker(line string, _ int) string {
	for _, marker := range unorderedMarkers {
		if strings.HasPrefix(line, marker) {
			return line[len(marker):]
		}
	}
	return line
}

func stripOrderedMarker(line string, n int) string {
	return strings.TrimPrefix(line, orderedMarker(n))
}

// inlineNodes tokenizes text and converts each span. Text without any
// visible content yields a single empty text node so the enclosing element
// still serializes.
func inlineNodes(text string) ([]htmlnode.Node, error) {
	spans, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	if len(spans) == 0 {
		return []htmlnode.Node{htmlnode.Text("")}, nil
	}

	nodes := make([]htmlnode.Node, 0, len(spans))
	for _, span := range spans {
		node, err := SpanToNode(span)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// SpanToNode converts a span to a leaf node. Links and images fail with
// ErrMissingURL when the span has no URL. An empty URL is rendered as is.
func SpanToNode(span Span) (htmlnode.Node, error) {
	switch span.Kind {
	case SpanLink:
		if !span.HasURL {
			return nil, fmt.Errorf("%w: link %q", ErrMissingURL, span.Text)
		}
		return htmlnode.NewLeaf("a", span.Text, htmlnode.Attr{Key: "href", Value: span.URL}), nil
	case SpanImage:
		if !span.HasURL {
			return nil, fmt.Errorf("%w: image %q", ErrMissingURL, span.Text)
		}
		attrs := []htmlnode.Attr{{Key: "src", Value: span.URL}}
		if span.Text != "" {
			attrs = append(attrs, htmlnode.Attr{Key: "alt", Value: span.Text})
		}
		return htmlnode.NewLeaf("img", "", attrs...), nil
	}

	tag, ok := spanTags[span.Kind]
	if !ok {
		return nil, fmt.Errorf("no tag for %s span", span.Kind)
	}
	return htmlnode.NewLeaf(tag, span.Text), nil
}
