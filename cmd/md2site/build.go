package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// Sentinel errors for the build command.
var (
	ErrTooManyArgs = errors.New("too many arguments")
	ErrBuildFailed = errors.New("build failed")
)

// styleFileName is the stylesheet the embedded layouts link to.
const styleFileName = "index.css"

// runBuild generates the site: static files are copied into the public
// directory, then every markdown page under the content directory is
// converted into it.
func runBuild(ctx context.Context, args []string, flags *buildFlags, env *Environment) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: build takes one content directory, got %d", ErrTooManyArgs, len(args))
	}

	cfg, err := loadSiteConfig(flags.common.config, loadEnvConfig())
	if err != nil {
		return err
	}
	mergeBuildFlags(flags, args, cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := validateWorkers(cfg.Build.Workers); err != nil {
		return err
	}
	if err := fileutil.CheckOverlap(cfg.Site.ContentDir, cfg.Site.PublicDir); err != nil {
		return fmt.Errorf("site directories: %w", err)
	}

	conv, err := md2site.NewConverter(converterOptions(cfg)...)
	if err != nil {
		return err
	}

	// Pages are discovered before the public directory is replaced.
	pages, err := discoverPages(cfg.Site.ContentDir, cfg.Site.PublicDir)
	if err != nil {
		return fmt.Errorf("discovering pages: %w", err)
	}
	if len(pages) == 0 {
		return fmt.Errorf("%w in %s", ErrNoPages, cfg.Site.ContentDir)
	}

	copied, err := preparePublicDir(cfg)
	if err != nil {
		return err
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Copied %d static file(s) to %s\n", copied, cfg.Site.PublicDir)
	}

	if err := writeDefaultStyle(cfg); err != nil {
		return err
	}

	workers := md2site.ResolveWorkers(cfg.Build.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Building %d page(s) with %d worker(s)\n", len(pages), workers)
	}

	start := env.Now()
	results := buildBatch(ctx, conv, pages, batchParams{workers: workers, drafts: cfg.Build.Drafts})

	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Done in %v\n", env.Now().Sub(start).Round(time.Millisecond))
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d page(s) failed", ErrBuildFailed, failed)
	}
	return nil
}

// preparePublicDir replaces the public directory with a copy of the static
// directory, or with an empty directory when there is none.
// Returns the number of static files copied.
func preparePublicDir(cfg *config.Config) (int, error) {
	public := cfg.Site.PublicDir

	if cfg.Site.StaticDir != "" && fileutil.DirExists(cfg.Site.StaticDir) {
		n, err := fileutil.CopyTree(cfg.Site.StaticDir, public)
		if err != nil {
			return 0, fmt.Errorf("copying static files: %w", err)
		}
		return n, nil
	}

	if err := os.RemoveAll(public); err != nil {
		return 0, fmt.Errorf("clearing %s: %w", public, err)
	}
	if err := os.MkdirAll(public, fileutil.DirPerm); err != nil {
		return 0, fmt.Errorf("creating %s: %w", public, err)
	}
	return 0, nil
}

// writeDefaultStyle writes the configured stylesheet as public/index.css
// unless the static files already provided one.
func writeDefaultStyle(cfg *config.Config) error {
	if cfg.Site.Style == "" {
		return nil
	}

	dst := filepath.Join(cfg.Site.PublicDir, styleFileName)
	if fileutil.FileExists(dst) {
		return nil
	}

	resolver, err := assets.NewAssetResolver(cfg.Site.ThemeDir)
	if err != nil {
		return fmt.Errorf("loading theme: %w", err)
	}
	css, err := resolver.LoadStyle(cfg.Site.Style)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", cfg.Site.Style, err)
	}
	if err := fileutil.WriteFileAtomic(dst, []byte(css)); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
