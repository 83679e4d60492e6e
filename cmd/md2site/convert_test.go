package main

// Notes:
// - runConvert: we test stdout and file output with the real converter,
//   plus argument and input errors. Each case passes an explicit config so
//   the working directory's site.yaml is never read.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
)

// newConvertFlags returns convert flags with an explicit config in dir.
func newConvertFlags(t *testing.T, dir string) *convertFlags {
	t.Helper()
	return &convertFlags{
		common: commonFlags{config: writeFile(t, dir, "site.yaml", "render:\n  engine: native\n")},
	}
}

// ---------------------------------------------------------------------------
// TestRunConvert - Single page conversion
// ---------------------------------------------------------------------------

func TestRunConvert(t *testing.T) {
	t.Parallel()

	t.Run("writes page to stdout", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeFile(t, dir, "page.md", "# Hello\n\nA *short* page.")
		env, stdout, _ := newTestEnv()

		if err := runConvert(context.Background(), []string{input}, newConvertFlags(t, dir), env); err != nil {
			t.Fatalf("runConvert() error = %v", err)
		}
		for _, want := range []string{"<!DOCTYPE html>", "<title>Hello</title>", "<i>short</i>"} {
			if !strings.Contains(stdout.String(), want) {
				t.Errorf("stdout should contain %q, got:\n%s", want, stdout.String())
			}
		}
	})

	t.Run("writes page to output file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeFile(t, dir, "page.md", "# Hello")
		flags := newConvertFlags(t, dir)
		flags.output = filepath.Join(dir, "out", "nested", "page.html")
		env, stdout, _ := newTestEnv()

		if err := runConvert(context.Background(), []string{input}, flags, env); err != nil {
			t.Fatalf("runConvert() error = %v", err)
		}
		if got := readFile(t, flags.output); !strings.Contains(got, "<h1>Hello</h1>") {
			t.Errorf("output should contain the page, got:\n%s", got)
		}
		if !strings.Contains(stdout.String(), "Created "+flags.output) {
			t.Errorf("stdout = %q, want Created line", stdout.String())
		}
	})

	t.Run("quiet suppresses Created line", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeFile(t, dir, "page.md", "# Hello")
		flags := newConvertFlags(t, dir)
		flags.output = filepath.Join(dir, "page.html")
		flags.common.quiet = true
		env, stdout, _ := newTestEnv()

		if err := runConvert(context.Background(), []string{input}, flags, env); err != nil {
			t.Fatalf("runConvert() error = %v", err)
		}
		if stdout.Len() != 0 {
			t.Errorf("stdout = %q, want empty", stdout.String())
		}
	})

	t.Run("render flags apply", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeFile(t, dir, "page.md", "# Hello\n\nSee [next](next.md).")
		flags := newConvertFlags(t, dir)
		flags.render.rewriteLinks = true
		flags.render.layout = "bare"
		env, stdout, _ := newTestEnv()

		if err := runConvert(context.Background(), []string{input}, flags, env); err != nil {
			t.Fatalf("runConvert() error = %v", err)
		}
		if !strings.Contains(stdout.String(), `href="next.html"`) {
			t.Errorf("link should be rewritten, got:\n%s", stdout.String())
		}
		if strings.Contains(stdout.String(), "index.css") {
			t.Errorf("bare layout should be used, got:\n%s", stdout.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunConvert_Errors - Argument, input and render failures
// ---------------------------------------------------------------------------

func TestRunConvert_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     func(dir string) []string
		mutate   func(*convertFlags)
		wantErr  error
		wantCode int
	}{
		{
			name:     "no input",
			args:     func(string) []string { return nil },
			wantErr:  ErrNoInput,
			wantCode: ExitIO,
		},
		{
			name:     "too many inputs",
			args:     func(string) []string { return []string{"a.md", "b.md"} },
			wantErr:  ErrTooManyArgs,
			wantCode: ExitUsage,
		},
		{
			name:     "wrong extension",
			args:     func(string) []string { return []string{"notes.txt"} },
			wantErr:  ErrInvalidExtension,
			wantCode: ExitUsage,
		},
		{
			name:     "missing file",
			args:     func(dir string) []string { return []string{filepath.Join(dir, "missing.md")} },
			wantErr:  ErrReadMarkdown,
			wantCode: ExitIO,
		},
		{
			name: "strict title",
			args: func(dir string) []string {
				return []string{filepath.Join(dir, "untitled.md")}
			},
			mutate:   func(f *convertFlags) { f.render.strictTitle = true },
			wantErr:  md2site.ErrNoTitle,
			wantCode: ExitRender,
		},
		{
			name: "empty file",
			args: func(dir string) []string {
				return []string{filepath.Join(dir, "empty.md")}
			},
			wantErr:  md2site.ErrEmptyMarkdown,
			wantCode: ExitUsage,
		},
		{
			name: "unknown engine",
			args: func(dir string) []string {
				return []string{filepath.Join(dir, "untitled.md")}
			},
			mutate:   func(f *convertFlags) { f.render.engine = "pandoc" },
			wantErr:  config.ErrInvalidValue,
			wantCode: ExitUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeFile(t, dir, "untitled.md", "Just text.")
			writeFile(t, dir, "empty.md", "")
			flags := newConvertFlags(t, dir)
			if tt.mutate != nil {
				tt.mutate(flags)
			}
			env, stdout, _ := newTestEnv()

			err := runConvert(context.Background(), tt.args(dir), flags, env)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if got := exitCodeFor(err); got != tt.wantCode {
				t.Errorf("exitCodeFor() = %d, want %d", got, tt.wantCode)
			}
			if stdout.Len() != 0 {
				t.Errorf("stdout = %q, want nothing on error", stdout.String())
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunConvert_OutputError - Unwritable output
// ---------------------------------------------------------------------------

func TestRunConvert_OutputError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "page.md", "# Hello")
	blocker := writeFile(t, dir, "blocker", "file")
	flags := newConvertFlags(t, dir)
	flags.output = filepath.Join(blocker, "page.html")
	env, _, _ := newTestEnv()

	err := runConvert(context.Background(), []string{input}, flags, env)
	if err == nil {
		t.Fatal("expected error when output parent is a file")
	}
	if _, statErr := os.Stat(flags.output); statErr == nil {
		t.Error("output should not exist")
	}
}
