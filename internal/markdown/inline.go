package markdown

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SpanKind identifies the style of an inline span.
type SpanKind int

// Span kinds. SpanPlain is unstyled text not yet claimed by any rule.
const (
	SpanPlain SpanKind = iota
	SpanBold
	SpanItalic
	SpanCode
	SpanLink
	SpanImage
)

var spanKindNames = [...]string{
	SpanPlain:  "plain",
	SpanBold:   "bold",
	SpanItalic: "italic",
	SpanCode:   "code",
	SpanLink:   "link",
	SpanImage:  "image",
}

func (k SpanKind) String() string {
	if k < 0 || int(k) >= len(spanKindNames) {
		return "SpanKind(" + strconv.Itoa(int(k)) + ")"
	}
	return spanKindNames[k]
}

// Span is a typed fragment of inline text. URL is only meaningful for
// SpanLink and SpanImage, and HasURL tells an empty URL from a missing one.
type Span struct {
	Kind   SpanKind
	Text   string
	URL    string
	HasURL bool
}

// delimiterRule pairs a delimiter with the style it introduces.
type delimiterRule struct {
	delimiter string
	kind      SpanKind
}

// delimiterRules run in order: "**" must be consumed before "*".
var delimiterRules = []delimiterRule{
	{delimiter: "**", kind: SpanBold},
	{delimiter: "*", kind: SpanItalic},
	{delimiter: "`", kind: SpanCode},
}

// Bracket syntax patterns. Labels and URLs never span lines.
var (
	imagePattern = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)
	linkPattern  = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
)

// Tokenize splits text into styled spans: bold, italic, code, images and
// links, in that order. Spans whose text is blank are dropped from the result,
// except links and images.
func Tokenize(text string) ([]Span, error) {
	spans := []Span{{Kind: SpanPlain, Text: text}}

	var err error
	for _, rule := range delimiterRules {
		spans, err = SplitDelimiter(spans, rule.delimiter, rule.kind)
		if err != nil {
			return nil, err
		}
	}
	spans = SplitImages(spans)
	spans = SplitLinks(spans)

	return dropBlank(spans), nil
}

// SplitDelimiter applies SplitSpan to every plain span. Styled spans are
// passed through unchanged.
func SplitDelimiter(spans []Span, delimiter string, kind SpanKind) ([]Span, error) {
	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != SpanPlain {
			out = append(out, span)
			continue
		}
		split, err := SplitSpan(span, delimiter, kind)
		if err != nil {
			return nil, err
		}
		out = append(out, split...)
	}
	return out, nil
}

// SplitSpan splits span on delimiter into segments alternating between the
// span's own kind and kind, starting and ending with the span's kind.
//
// A dangling delimiter is kept as literal text: the last two pieces are joined
// back together around it. An empty first or last segment is dropped unless
// it has the new kind or is the only segment.
//
// Splitting a span that already has kind fails with ErrConflictingStyle.
func SplitSpan(span Span, delimiter string, kind SpanKind) ([]Span, error) {
	if span.Kind == kind {
		return nil, fmt.Errorf("%w: %s span on %q", ErrConflictingStyle, kind, delimiter)
	}

	parts := strings.Split(span.Text, delimiter)
	if n := len(parts); n%2 == 0 {
		parts = append(parts[:n-2], parts[n-2]+delimiter+parts[n-1])
	}

	kinds := [2]SpanKind{span.Kind, kind}
	out := make([]Span, 0, len(parts))
	for i, part := range parts {
		out = append(out, Span{Kind: kinds[i%2], Text: part})
	}
	return trimEmptyEnds(out, kind), nil
}

// trimEmptyEnds drops an empty first or last span unless it has kind.
// Lists of one span are returned as is.
func trimEmptyEnds(spans []Span, kind SpanKind) []Span {
	if len(spans) <= 1 {
		return spans
	}
	start, end := 0, len(spans)
	if spans[start].Text == "" && spans[start].Kind != kind {
		start++
	}
	if spans[end-1].Text == "" && spans[end-1].Kind != kind {
		end--
	}
	return spans[start:end]
}

// SplitImages extracts ![alt](url) images from plain spans.
func SplitImages(spans []Span) []Span {
	return splitBracketed(spans, imagePattern, SpanImage, false)
}

// SplitLinks extracts [text](url) links from plain spans. A match directly
// preceded by '!' is image syntax and is left as text.
func SplitLinks(spans []Span) []Span {
	return splitBracketed(spans, linkPattern, SpanLink, true)
}

func splitBracketed(spans []Span, pattern *regexp.Regexp, kind SpanKind, skipAfterBang bool) []Span {
	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != SpanPlain {
			out = append(out, span)
			continue
		}
		out = appendBracketed(out, span.Text, pattern, kind, skipAfterBang)
	}
	return out
}

// appendBracketed scans text with a cursor, appending the literal text between
// matches as plain spans and each match as a span of kind.
func appendBracketed(out []Span, text string, pattern *regexp.Regexp, kind SpanKind, skipAfterBang bool) []Span {
	literal := 0
	cursor := 0
	for {
		loc := pattern.FindStringSubmatchIndex(text[cursor:])
		if loc == nil {
			break
		}
		for i := range loc {
			loc[i] += cursor
		}
		start, end := loc[0], loc[1]

		if skipAfterBang && start > 0 && text[start-1] == '!' {
			cursor = start + 1
			continue
		}

		if start > literal {
			out = append(out, Span{Kind: SpanPlain, Text: text[literal:start]})
		}
		out = append(out, Span{
			Kind:   kind,
			Text:   text[loc[2]:loc[3]],
			URL:    text[loc[4]:loc[5]],
			HasURL: true,
		})
		literal, cursor = end, end
	}

	if literal < len(text) {
		out = append(out, Span{Kind: SpanPlain, Text: text[literal:]})
	}
	return out
}

// dropBlank removes spans whose text is empty after trimming whitespace.
// Spans carrying a URL are kept.
func dropBlank(spans []Span) []Span {
	out := spans[:0]
	for _, span := range spans {
		if !span.HasURL && strings.TrimSpace(span.Text) == "" {
			continue
		}
		out = append(out, span)
	}
	return out
}
