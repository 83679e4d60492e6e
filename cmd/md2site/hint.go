package main

import (
	"errors"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/hints"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// hintFor returns an actionable hint for err, or "" when none applies.
// configName is the --config value, empty for the default lookup.
func hintFor(err error, configName string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, config.ErrConfigNotFound):
		if configName == "" {
			configName = defaultConfigName
		}
		return hints.ForConfigNotFound(config.SearchPaths(configName))
	case errors.Is(err, md2site.ErrNoTitle):
		return hints.ForNoTitle()
	case errors.Is(err, md2site.ErrMissingURL):
		return hints.ForMissingURL()
	case errors.Is(err, md2site.ErrTemplateMissingContent):
		return hints.ForTemplateContent()
	case errors.Is(err, md2site.ErrLayoutNotFound):
		return hints.ForLayoutNotFound(assets.LayoutNames())
	case errors.Is(err, md2site.ErrUnknownEngine):
		return hints.ForEngine([]string{pipeline.EngineNative, pipeline.EngineGoldmark})
	case errors.Is(err, ErrWriteHTML):
		return hints.ForOutputDirectory()
	default:
		return ""
	}
}
