package pipeline

import (
	"errors"
	"strings"
)

// Placeholders substituted by PageTemplate.Render.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// ErrTemplateMissingContent indicates a page template without a content
// placeholder.
var ErrTemplateMissingContent = errors.New("page template has no " + ContentPlaceholder + " placeholder")

// PageTemplate is a page layout with literal placeholders. It is immutable
// and safe for concurrent use.
type PageTemplate struct {
	raw string
}

// NewPageTemplate validates raw and returns a PageTemplate. The title
// placeholder is optional.
func NewPageTemplate(raw string) (*PageTemplate, error) {
	if !strings.Contains(raw, ContentPlaceholder) {
		return nil, ErrTemplateMissingContent
	}
	return &PageTemplate{raw: raw}, nil
}

// Render substitutes every placeholder occurrence in a single pass: text
// inserted for one placeholder is never scanned for the other.
func (t *PageTemplate) Render(title, content string) string {
	r := strings.NewReplacer(
		TitlePlaceholder, title,
		ContentPlaceholder, content,
	)
	return r.Replace(t.raw)
}
