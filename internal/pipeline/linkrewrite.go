package pipeline

import (
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// htmlExt replaces the extension of rewritten page links.
const htmlExt = ".html"

// markdownExts are the source extensions whose links get rewritten.
var markdownExts = map[string]bool{
	".md":       true,
	".markdown": true,
}

// RewriteMarkdownLinks points relative links to Markdown sources at the pages
// generated from them: <a href="guide/setup.md#install"> becomes
// <a href="guide/setup.html#install">. Query strings and fragments are kept.
//
// Left unchanged:
//   - URLs with a scheme or host (https:, mailto:, //cdn)
//   - fragment-only anchors
//   - absolute paths
//   - anything other than a[href]
//
// The markup is re-rendered through golang.org/x/net/html, so void elements
// come back in their canonical form (<img .../>) and text is escaped.
func RewriteMarkdownLinks(htmlContent string) (string, error) {
	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rewriteNode(doc)

	return renderHTML(doc, isFragment)
}

// parseHTML parses a full document or a body fragment.
// Returns the parsed node and whether it was a fragment.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, true, nil
}

// renderHTML renders the tree. Fragments render their children only so no
// <html><body> wrapper appears.
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if !isFragment {
		if err := html.Render(&buf, doc); err != nil {
			return "", err
		}
		return buf.String(), nil
	}

	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func rewriteNode(n *html.Node) {
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		for i, attr := range n.Attr {
			if attr.Namespace != "" || attr.Key != "href" {
				continue
			}
			if href, ok := markdownLinkToHTML(attr.Val); ok {
				n.Attr[i].Val = href
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c)
	}
}

// markdownLinkToHTML returns href with its Markdown extension replaced, or
// false when href is not a relative link to a Markdown file.
func markdownLinkToHTML(href string) (string, bool) {
	if !isRelativePath(href) {
		return "", false
	}

	end := strings.IndexAny(href, "?#")
	if end < 0 {
		end = len(href)
	}
	target, suffix := href[:end], href[end:]

	ext := path.Ext(target)
	if !markdownExts[strings.ToLower(ext)] {
		return "", false
	}
	return strings.TrimSuffix(target, ext) + htmlExt + suffix, true
}

// isRelativePath reports whether href is a path relative to the current page.
func isRelativePath(href string) bool {
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "/") {
		return false
	}

	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}
