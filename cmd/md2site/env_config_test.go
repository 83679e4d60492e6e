package main

// Notes:
// - loadEnvConfig: we test every MD2SITE_* variable. Malformed and
//   non-positive worker counts are ignored, not errors.
// - warnUnknownEnvVars: we test typo detection and that known vars don't warn.
// - applyEnvConfig: we test that set values override the file and unset
//   values leave it alone.
// - Tests use t.Setenv() which prevents t.Parallel() at parent level.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-md2site/internal/config"
	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Run("all variables", func(t *testing.T) {
		t.Setenv("MD2SITE_CONFIG", "/etc/site.yaml")
		t.Setenv("MD2SITE_CONTENT_DIR", "docs")
		t.Setenv("MD2SITE_PUBLIC_DIR", "dist")
		t.Setenv("MD2SITE_ENGINE", "goldmark")
		t.Setenv("MD2SITE_WORKERS", "4")

		got := loadEnvConfig()
		want := &envConfig{
			ConfigPath: "/etc/site.yaml",
			ContentDir: "docs",
			PublicDir:  "dist",
			Engine:     "goldmark",
			Workers:    4,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("loadEnvConfig() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unset variables are empty", func(t *testing.T) {
		t.Setenv("MD2SITE_CONFIG", "")
		t.Setenv("MD2SITE_CONTENT_DIR", "")
		t.Setenv("MD2SITE_PUBLIC_DIR", "")
		t.Setenv("MD2SITE_ENGINE", "")
		t.Setenv("MD2SITE_WORKERS", "")

		got := loadEnvConfig()
		if diff := cmp.Diff(&envConfig{}, got); diff != "" {
			t.Errorf("loadEnvConfig() mismatch (-want +got):\n%s", diff)
		}
	})

	for _, workers := range []string{"abc", "0", "-3", "2.5"} {
		t.Run("ignores workers "+workers, func(t *testing.T) {
			t.Setenv("MD2SITE_WORKERS", workers)

			if got := loadEnvConfig().Workers; got != 0 {
				t.Errorf("Workers = %d, want 0", got)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Run("warns on unknown variable", func(t *testing.T) {
		t.Setenv("MD2SITE_WORKER", "2")

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf)

		if !strings.Contains(buf.String(), "unknown environment variable MD2SITE_WORKER (typo?)") {
			t.Errorf("output = %q, want warning for MD2SITE_WORKER", buf.String())
		}
	})

	t.Run("known variables do not warn", func(t *testing.T) {
		t.Setenv("MD2SITE_WORKERS", "2")
		t.Setenv("MD2SITE_ENGINE", "native")

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf)

		if strings.Contains(buf.String(), "MD2SITE_WORKERS") || strings.Contains(buf.String(), "MD2SITE_ENGINE") {
			t.Errorf("output = %q, known variables should not warn", buf.String())
		}
	})

	t.Run("other prefixes are ignored", func(t *testing.T) {
		t.Setenv("MD2SITEX", "1")

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf)

		if strings.Contains(buf.String(), "MD2SITEX") {
			t.Errorf("output = %q, variables without the prefix should not warn", buf.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Environment over config file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		env    envConfig
		mutate func(*config.Config)
	}{
		{
			name:   "empty env keeps config",
			env:    envConfig{},
			mutate: func(*config.Config) {},
		},
		{
			name: "set values override",
			env:  envConfig{ContentDir: "docs", PublicDir: "dist", Engine: "goldmark", Workers: 3},
			mutate: func(c *config.Config) {
				c.Site.ContentDir = "docs"
				c.Site.PublicDir = "dist"
				c.Render.Engine = "goldmark"
				c.Build.Workers = 3
			},
		},
		{
			name:   "config path is not a config value",
			env:    envConfig{ConfigPath: "other.yaml"},
			mutate: func(*config.Config) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := config.DefaultConfig()
			applyEnvConfig(&tt.env, got)

			want := config.DefaultConfig()
			tt.mutate(want)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("applyEnvConfig() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
