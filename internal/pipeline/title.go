package pipeline

import (
	"errors"
	"strings"
	"unicode"
)

// titlePrefix marks a level-one heading line.
const titlePrefix = "# "

// ErrNoTitle indicates a document has no level-one heading.
var ErrNoTitle = errors.New("no level-one heading found")

// ExtractTitle returns the text of the first line that starts with "# " once
// leading whitespace is ignored. The heading may sit anywhere in the document.
// A heading with no text counts as missing.
func ExtractTitle(content string) (string, error) {
	for line := range strings.Lines(content) {
		line = strings.TrimLeftFunc(line, unicode.IsSpace)
		if !strings.HasPrefix(line, titlePrefix) {
			continue
		}
		if title := strings.TrimSpace(line[len(titlePrefix):]); title != "" {
			return title, nil
		}
		break
	}
	return "", ErrNoTitle
}
