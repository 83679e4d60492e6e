package main

import (
	"errors"
	"fmt"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
)

// defaultConfigName is looked up when neither --config nor MD2SITE_CONFIG
// is set. Not finding it is not an error.
const defaultConfigName = "site"

// loadSiteConfig resolves the configuration for a command.
// Order: --config flag, MD2SITE_CONFIG, then an optional site.yaml;
// environment values are applied on top of the file.
func loadSiteConfig(flagConfig string, env *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = env.ConfigPath
	}

	var cfg *config.Config
	var err error
	if name != "" {
		cfg, err = config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg, err = config.LoadConfig(defaultConfigName)
		if errors.Is(err, config.ErrConfigNotFound) {
			cfg, err = config.DefaultConfig(), nil
		}
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(env, cfg)
	return cfg, nil
}

// mergeRenderFlags applies explicitly set render flags to cfg.
// Boolean flags can only enable a setting.
func mergeRenderFlags(f renderFlags, cfg *config.Config) {
	if f.engine != "" {
		cfg.Render.Engine = f.engine
	}
	if f.template != "" {
		cfg.Site.Template = f.template
	}
	if f.layout != "" {
		cfg.Site.Layout = f.layout
	}
	if f.themeDir != "" {
		cfg.Site.ThemeDir = f.themeDir
	}
	if f.rewriteLinks {
		cfg.Render.RewriteLinks = true
	}
	if f.highlight {
		cfg.Render.Highlight = true
	}
	if f.strictTitle {
		cfg.Build.StrictTitle = true
	}
}

// mergeBuildFlags applies build flags and the optional content directory
// argument to cfg.
func mergeBuildFlags(f *buildFlags, args []string, cfg *config.Config) {
	mergeRenderFlags(f.render, cfg)

	if len(args) > 0 {
		cfg.Site.ContentDir = args[0]
	}
	if f.publicDir != "" {
		cfg.Site.PublicDir = f.publicDir
	}
	if f.staticDir != "" {
		cfg.Site.StaticDir = f.staticDir
	}
	if f.workers > 0 {
		cfg.Build.Workers = f.workers
	}
	if f.drafts {
		cfg.Build.Drafts = true
	}
}

// converterOptions maps cfg onto library options.
func converterOptions(cfg *config.Config) []md2site.Option {
	opts := []md2site.Option{
		md2site.WithEngine(cfg.Render.Engine),
		md2site.WithHighlighting(cfg.Render.Highlight),
		md2site.WithLinkRewrite(cfg.Render.RewriteLinks),
		md2site.WithStrictTitle(cfg.Build.StrictTitle),
	}
	if cfg.Site.Layout != "" {
		opts = append(opts, md2site.WithLayout(cfg.Site.Layout))
	}
	if cfg.Site.ThemeDir != "" {
		opts = append(opts, md2site.WithThemeDir(cfg.Site.ThemeDir))
	}
	if cfg.Site.Template != "" {
		opts = append(opts, md2site.WithTemplateFile(cfg.Site.Template))
	}
	return opts
}
