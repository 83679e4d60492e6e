package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// Sentinel errors for batch operations.
var (
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteHTML    = errors.New("failed to write HTML file")
)

// PageConverter is the interface for the conversion service.
type PageConverter interface {
	Convert(ctx context.Context, input md2site.Input) (*md2site.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ PageConverter = (*md2site.Converter)(nil)

// BuildResult holds the outcome of a single page.
type BuildResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Skipped    bool // draft page left out of the build
	Duration   time.Duration
}

// batchParams groups parameters shared across batch/page conversion.
type batchParams struct {
	workers int
	drafts  bool // convert pages marked draft
}

// buildBatch converts pages concurrently with a fixed number of workers.
// Results keep the order of pages.
func buildBatch(ctx context.Context, conv PageConverter, pages []PageToBuild, params batchParams) []BuildResult {
	if len(pages) == 0 {
		return nil
	}

	concurrency := min(max(params.workers, 1), len(pages))

	results := make([]BuildResult, len(pages))
	var wg sync.WaitGroup
	jobs := make(chan int, len(pages))

	for range concurrency {
		wg.Go(func() {
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = BuildResult{
						InputPath: pages[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = buildPage(ctx, conv, pages[idx], params)
			}
		})
	}

	for i := range pages {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// buildPage converts a single page and writes it to its output path.
func buildPage(ctx context.Context, conv PageConverter, page PageToBuild, params batchParams) BuildResult {
	start := time.Now()
	result := BuildResult{
		InputPath:  page.InputPath,
		OutputPath: page.OutputPath,
	}
	finish := func(err error) BuildResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(page.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return finish(fmt.Errorf("%w: %w", ErrReadMarkdown, err))
	}

	converted, err := conv.Convert(ctx, md2site.Input{
		Markdown: string(content),
		Name:     page.InputPath,
	})
	if err != nil {
		return finish(err)
	}

	if converted.Draft && !params.drafts {
		result.Skipped = true
		return finish(nil)
	}

	if err := os.MkdirAll(filepath.Dir(page.OutputPath), fileutil.DirPerm); err != nil {
		return finish(fmt.Errorf("creating output directory: %w", err))
	}
	if err := fileutil.WriteFileAtomic(page.OutputPath, converted.HTML); err != nil {
		return finish(fmt.Errorf("%w: %w", ErrWriteHTML, err))
	}

	return finish(nil)
}

// ResultSummary holds the count of built, skipped and failed pages.
type ResultSummary struct {
	Succeeded int
	Skipped   int
	Failed    int
}

// countResults tallies page outcomes.
func countResults(results []BuildResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Skipped:
			summary.Skipped++
		default:
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs page results and returns the number of failures.
func printResults(results []BuildResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err, ""))
			continue
		}

		if quiet {
			continue
		}

		switch {
		case r.Skipped && verbose:
			fmt.Fprintf(env.Stdout, "Skipped draft %s\n", r.InputPath)
		case r.Skipped:
		case verbose:
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		default:
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d skipped, %d failed\n", summary.Succeeded, summary.Skipped, summary.Failed)
	}

	return summary.Failed
}
