// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// userConfigMarker identifies the per-user config location among searched paths.
const userConfigMarker = ".config/go-md2site"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when one was searched, the per-user config path.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/site.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, userConfigMarker) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForNoTitle returns a hint for pages without a level-one heading.
func ForNoTitle() string {
	return format(`start the page with a "# Title" line or set title in front matter`)
}

// ForMissingURL returns a hint for links and images with an empty target.
func ForMissingURL() string {
	return format("write links as [text](url) and images as ![alt](url)")
}

// ForTemplateContent returns a hint for page templates without a content slot.
func ForTemplateContent() string {
	return format("add {{ Content }} where the page body goes")
}

// ForLayoutNotFound lists the layouts that can be used instead.
func ForLayoutNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForEngine lists the supported render engines.
func ForEngine(engines []string) string {
	return format("use --engine " + strings.Join(engines, " or --engine "))
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
