package assets

import "fmt"

// maxAssetNameLength bounds layout and style names.
const maxAssetNameLength = 64

// ValidateAssetName checks that a layout or style name maps to exactly one
// file: 1 to 64 ASCII letters, digits, '-' or '_'. Separators, dots and
// spaces are rejected.
func ValidateAssetName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	case len(name) > maxAssetNameLength:
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidAssetName, maxAssetNameLength)
	}

	for _, r := range name {
		if !isAssetNameRune(r) {
			return fmt.Errorf("%w: %q contains %q", ErrInvalidAssetName, name, r)
		}
	}
	return nil
}

func isAssetNameRune(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r >= '0' && r <= '9' ||
		r == '-' || r == '_'
}
