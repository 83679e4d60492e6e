package markdown

import "errors"

// Sentinel errors for compilation.
var (
	// ErrConflictingStyle indicates a span was split with its own style.
	ErrConflictingStyle = errors.New("cannot split span with its own style")

	// ErrMissingURL indicates a link or image span without a URL.
	ErrMissingURL = errors.New("link or image span needs a URL")

	// ErrUnrecognizedBlockType indicates a block type the compiler has no rule for.
	ErrUnrecognizedBlockType = errors.New("unrecognized block type")
)
