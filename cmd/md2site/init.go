package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/yamlutil"
)

// ErrSiteExists indicates init would overwrite an existing config.
var ErrSiteExists = errors.New("site already initialized")

// configFileName is the config written by init and found by default.
const configFileName = defaultConfigName + ".yaml"

const configHeader = "# md2site configuration. Run 'md2site help build' for details.\n"

const sampleIndex = `# Welcome

This site was generated by **md2site**.

## Writing pages

Add *markdown* files under the content directory. Each file becomes a page
with the same path under the public directory.

- Headings, paragraphs and quotes
- Lists, ` + "`code`" + ` and [links](https://commonmark.org)

> Run md2site build to regenerate the site.
`

// runInit scaffolds a site in the target directory (default: current):
// site.yaml with default settings, a sample content page and an empty
// static directory. Existing pages are never overwritten.
func runInit(args []string, flags *initFlags, env *Environment) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: init takes one directory, got %d", ErrTooManyArgs, len(args))
	}
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	cfg := config.DefaultConfig()
	cfgPath := filepath.Join(root, configFileName)
	if fileutil.FileExists(cfgPath) && !flags.force {
		return fmt.Errorf("%w: %s exists (use --force to overwrite)", ErrSiteExists, cfgPath)
	}

	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	for _, dir := range []string{root, filepath.Join(root, cfg.Site.ContentDir), filepath.Join(root, cfg.Site.StaticDir)} {
		if err := os.MkdirAll(dir, fileutil.DirPerm); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	if err := fileutil.WriteFileAtomic(cfgPath, append([]byte(configHeader), data...)); err != nil {
		return fmt.Errorf("writing %s: %w", cfgPath, err)
	}
	created := []string{cfgPath}

	indexPath := filepath.Join(root, cfg.Site.ContentDir, "index.md")
	if !fileutil.FileExists(indexPath) {
		if err := fileutil.WriteFileAtomic(indexPath, []byte(sampleIndex)); err != nil {
			return fmt.Errorf("writing %s: %w", indexPath, err)
		}
		created = append(created, indexPath)
	}

	if !flags.common.quiet {
		for _, p := range created {
			fmt.Fprintf(env.Stdout, "Created %s\n", p)
		}
	}
	return nil
}
