package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-md2site/internal/config"
)

// envPrefix marks the environment variables read by md2site.
const envPrefix = "MD2SITE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2SITE_CONFIG: config file name or path
	ContentDir string // MD2SITE_CONTENT_DIR: markdown sources
	PublicDir  string // MD2SITE_PUBLIC_DIR: generated site
	Engine     string // MD2SITE_ENGINE: native or goldmark
	Workers    int    // MD2SITE_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2SITE_* environment variables.
var knownEnvVars = map[string]bool{
	"MD2SITE_CONFIG":      true,
	"MD2SITE_CONTENT_DIR": true,
	"MD2SITE_PUBLIC_DIR":  true,
	"MD2SITE_ENGINE":      true,
	"MD2SITE_WORKERS":     true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed or non-positive MD2SITE_WORKERS values are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MD2SITE_CONFIG"),
		ContentDir: os.Getenv("MD2SITE_CONTENT_DIR"),
		PublicDir:  os.Getenv("MD2SITE_PUBLIC_DIR"),
		Engine:     os.Getenv("MD2SITE_ENGINE"),
	}

	if workers := os.Getenv("MD2SITE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for each unrecognized MD2SITE_* variable.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies set environment values over cfg.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied afterwards by the merge functions).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.ContentDir != "" {
		cfg.Site.ContentDir = env.ContentDir
	}
	if env.PublicDir != "" {
		cfg.Site.PublicDir = env.PublicDir
	}
	if env.Engine != "" {
		cfg.Render.Engine = env.Engine
	}
	if env.Workers > 0 {
		cfg.Build.Workers = env.Workers
	}
}
