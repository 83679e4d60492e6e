package main

// Notes:
// - This file contains test helpers shared across command tests.
// - These are not functions under test themselves, but supporting infrastructure.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Environment - Captured output and a fixed clock
// ---------------------------------------------------------------------------

// fixedNow is the clock used by test environments.
var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

// newTestEnv returns an Environment writing to buffers.
func newTestEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdout: stdout,
		Stderr: stderr,
	}, stdout, stderr
}

// ---------------------------------------------------------------------------
// Filesystem - Site fixtures
// ---------------------------------------------------------------------------

// writeFile creates root/rel with content, creating parent directories.
func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()

	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
	return path
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// newSite creates a content tree and a site.yaml under a temp dir and
// returns build flags pointing at them. The content directory is the
// positional argument, so callers pass filepath.Join(root, "content").
func newSite(t *testing.T, pages map[string]string) (root string, flags *buildFlags) {
	t.Helper()

	root = t.TempDir()
	for rel, content := range pages {
		writeFile(t, root, filepath.Join("content", rel), content)
	}
	flags = &buildFlags{
		common:    commonFlags{config: writeFile(t, root, "site.yaml", "build:\n  workers: 2\n")},
		publicDir: filepath.Join(root, "public"),
		staticDir: filepath.Join(root, "static"),
	}
	return root, flags
}
