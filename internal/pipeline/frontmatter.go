package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-md2site/internal/yamlutil"
)

// frontMatterFence opens and closes a front matter block, alone on its line.
const frontMatterFence = "---"

// ErrFrontMatter indicates a front matter block that is not valid YAML.
var ErrFrontMatter = errors.New("invalid front matter")

// FrontMatter holds page metadata declared before the Markdown body.
type FrontMatter struct {
	Title  string `yaml:"title"`  // overrides the extracted title
	Layout string `yaml:"layout"` // page layout name, empty for the site default
	Draft  bool   `yaml:"draft"`  // drafts are skipped by site builds
}

// SplitFrontMatter separates a leading YAML block fenced by "---" lines from
// the Markdown body. Content without an opening fence on its first line, or
// without a closing fence, is returned unchanged as the body. Keys other than
// those of FrontMatter are ignored.
//
// Content must already have \n line endings.
func SplitFrontMatter(content string) (FrontMatter, string, error) {
	var fm FrontMatter

	rest, ok := strings.CutPrefix(content, frontMatterFence+"\n")
	if !ok {
		return fm, content, nil
	}

	offset := 0
	for line := range strings.Lines(rest) {
		if strings.TrimRight(line, " \t\n") != frontMatterFence {
			offset += len(line)
			continue
		}

		meta, body := rest[:offset], rest[offset+len(line):]
		if strings.TrimSpace(meta) != "" {
			if err := yamlutil.Unmarshal([]byte(meta), &fm); err != nil {
				return FrontMatter{}, "", fmt.Errorf("%w: %w", ErrFrontMatter, err)
			}
		}
		return fm, body, nil
	}

	return fm, content, nil
}
