package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// ErrNoInput indicates convert was called without a file.
var ErrNoInput = errors.New("no input specified")

// runConvert converts one markdown file into a page written to the output
// file, or to stdout without one.
func runConvert(ctx context.Context, args []string, flags *convertFlags, env *Environment) error {
	switch {
	case len(args) == 0:
		return ErrNoInput
	case len(args) > 1:
		return fmt.Errorf("%w: convert takes one file, got %d", ErrTooManyArgs, len(args))
	}
	inputPath := args[0]

	if err := validateMarkdownExtension(inputPath); err != nil {
		return err
	}

	cfg, err := loadSiteConfig(flags.common.config, loadEnvConfig())
	if err != nil {
		return err
	}
	mergeRenderFlags(flags.render, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	conv, err := md2site.NewConverter(converterOptions(cfg)...)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}

	result, err := conv.Convert(ctx, md2site.Input{Markdown: string(content), Name: inputPath})
	if err != nil {
		return fmt.Errorf("converting %s: %w", inputPath, err)
	}

	if flags.output == "" {
		if _, err := env.Stdout.Write(result.HTML); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteHTML, err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(flags.output), fileutil.DirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := fileutil.WriteFileAtomic(flags.output, result.HTML); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteHTML, err)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", flags.output)
	}
	return nil
}
