package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
)

// ---------------------------------------------------------------------------
// TestHintFor - Actionable hints per error
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		configName string
		want       string // substring, empty means no hint
	}{
		{"nil", nil, "", ""},
		{"unrelated", errors.New("boom"), "", ""},
		{"config not found", config.ErrConfigNotFound, "blog", "--config"},
		{"config not found default name", config.ErrConfigNotFound, "", "--config"},
		{"no title", fmt.Errorf("page: %w", md2site.ErrNoTitle), "", "# Title"},
		{"missing url", md2site.ErrMissingURL, "", "[text](url)"},
		{"template content", md2site.ErrTemplateMissingContent, "", "{{ Content }}"},
		{"layout not found", md2site.ErrLayoutNotFound, "", "bare"},
		{"unknown engine", md2site.ErrUnknownEngine, "", "--engine goldmark"},
		{"write html", ErrWriteHTML, "", "writable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err, tt.configName)
			if tt.want == "" {
				if got != "" {
					t.Errorf("hintFor() = %q, want no hint", got)
				}
				return
			}
			if !strings.Contains(got, "hint:") || !strings.Contains(got, tt.want) {
				t.Errorf("hintFor() = %q, want hint containing %q", got, tt.want)
			}
		})
	}
}
