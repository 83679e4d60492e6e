package md2site

import (
	"errors"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/htmlnode"
	"github.com/alnah/go-md2site/internal/markdown"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown   = errors.New("markdown content cannot be empty")
	ErrInvalidTemplate = errors.New("invalid page template")
)

// Compilation errors, re-exported for errors.Is checks.
var (
	ErrConflictingStyle      = markdown.ErrConflictingStyle
	ErrMissingURL            = markdown.ErrMissingURL
	ErrUnrecognizedBlockType = markdown.ErrUnrecognizedBlockType

	// Tree serialization errors. ErrEmptyChildren is what an empty or
	// whitespace-only document ends in.
	ErrMissingValue  = htmlnode.ErrMissingValue
	ErrMissingTag    = htmlnode.ErrMissingTag
	ErrEmptyChildren = htmlnode.ErrEmptyChildren
)

// Pipeline errors, re-exported for errors.Is checks.
var (
	ErrHTMLConversion         = pipeline.ErrHTMLConversion
	ErrUnknownEngine          = pipeline.ErrUnknownEngine
	ErrNoTitle                = pipeline.ErrNoTitle
	ErrFrontMatter            = pipeline.ErrFrontMatter
	ErrTemplateMissingContent = pipeline.ErrTemplateMissingContent
)

// Asset loading errors, re-exported for errors.Is checks.
var (
	ErrLayoutNotFound   = assets.ErrLayoutNotFound
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrInvalidAssetName = assets.ErrInvalidAssetName
	ErrInvalidThemeDir  = assets.ErrInvalidBasePath
)
