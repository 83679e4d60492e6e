package main

// Notes:
// - GenerateCompletion: we test that shell scripts are generated with expected
//   content markers. We do not test that the scripts actually work in the
//   target shell (that would require integration tests with actual shells).
// - getCommands: we test the command definitions against the dispatcher and
//   the flag registration.
// These are acceptable gaps: we test observable behavior, not runtime shell behavior.

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGenerateCompletion_SupportedShells - Shell completion script generation
// ---------------------------------------------------------------------------

func TestGenerateCompletion_SupportedShells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		shell        Shell
		wantContains []string
	}{
		{
			name:  "bash",
			shell: ShellBash,
			wantContains: []string{
				"_md2site_completions",
				"complete -F _md2site_completions md2site",
				"compgen",
				"build convert init completion version help",
				"-e|--engine)",
				"native goldmark",
				"--drafts",
			},
		},
		{
			name:  "zsh",
			shell: ShellZsh,
			wantContains: []string{
				"#compdef md2site",
				"_arguments",
				"_describe",
				"'(-o --output)'{-o,--output}",
				":value:(native goldmark)",
				":directory:_files -/",
			},
		},
		{
			name:  "fish",
			shell: ShellFish,
			wantContains: []string{
				"complete -c md2site",
				"__fish_md2site_needs_command",
				"__fish_md2site_using_command",
				"-l engine -s e -x -a 'native goldmark'",
				"-l theme -x -a '(__fish_complete_directories)'",
			},
		},
		{
			name:  "powershell",
			shell: ShellPowerShell,
			wantContains: []string{
				"Register-ArgumentCompleter",
				"-CommandName md2site",
				"'build' = @(",
				"'--rewrite-links'",
				"CompletionResult",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("%s script should contain %q", tt.shell, want)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGenerateCompletion_UnsupportedShell - Error on unknown shell
// ---------------------------------------------------------------------------

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := GenerateCompletion(&buf, Shell("tcsh"))
	if !errors.Is(err, ErrUnsupportedShell) {
		t.Fatalf("error = %v, want ErrUnsupportedShell", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written, got %q", buf.String())
	}
}

// ---------------------------------------------------------------------------
// TestGetCommands - Command registry
// ---------------------------------------------------------------------------

func TestGetCommands(t *testing.T) {
	t.Parallel()

	cmds := getCommands()

	t.Run("matches dispatcher", func(t *testing.T) {
		t.Parallel()

		if len(cmds) != len(commands) {
			t.Fatalf("got %d commands, want %d", len(cmds), len(commands))
		}
		for _, c := range cmds {
			if !isCommand(c.Name) {
				t.Errorf("completion lists %q which runMain does not dispatch", c.Name)
			}
			if c.Desc == "" {
				t.Errorf("command %q has no description", c.Name)
			}
		}
	})

	flagsOf := func(t *testing.T, name string) map[string]flagDef {
		t.Helper()
		for _, c := range cmds {
			if c.Name == name {
				m := make(map[string]flagDef, len(c.Flags))
				for _, f := range c.Flags {
					m[f.Long] = f
				}
				return m
			}
		}
		t.Fatalf("command %q not found", name)
		return nil
	}

	t.Run("build output completes directories", func(t *testing.T) {
		t.Parallel()

		if got := flagsOf(t, "build")["output"]; got.Type != flagDir || got.Short != "o" {
			t.Errorf("build --output = %+v, want directory flag -o", got)
		}
	})

	t.Run("convert output is a plain value", func(t *testing.T) {
		t.Parallel()

		if got := flagsOf(t, "convert")["output"]; got.Type != flagString {
			t.Errorf("convert --output type = %v, want string", got.Type)
		}
	})

	t.Run("flag metadata", func(t *testing.T) {
		t.Parallel()

		build := flagsOf(t, "build")
		tests := []struct {
			flag string
			want flagType
		}{
			{"engine", flagEnum},
			{"config", flagFile},
			{"template", flagFile},
			{"theme", flagDir},
			{"static", flagDir},
			{"workers", flagInt},
			{"drafts", flagBool},
			{"layout", flagString},
		}
		for _, tt := range tests {
			if got := build[tt.flag].Type; got != tt.want {
				t.Errorf("--%s type = %v, want %v", tt.flag, got, tt.want)
			}
		}
	})

	t.Run("init has no render flags", func(t *testing.T) {
		t.Parallel()

		flags := flagsOf(t, "init")
		if _, ok := flags["engine"]; ok {
			t.Error("init should not offer --engine")
		}
		if _, ok := flags["force"]; !ok {
			t.Error("init should offer --force")
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunCompletion - Command entry point
// ---------------------------------------------------------------------------

func TestRunCompletion(t *testing.T) {
	t.Parallel()

	t.Run("no shell prints usage", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := newTestEnv()
		if err := runCompletion(nil, env); err != nil {
			t.Fatalf("runCompletion() error = %v", err)
		}
		if !strings.Contains(stdout.String(), "Supported shells:") {
			t.Errorf("stdout = %q, want usage", stdout.String())
		}
	})

	t.Run("shell writes script", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := newTestEnv()
		if err := runCompletion([]string{"fish"}, env); err != nil {
			t.Fatalf("runCompletion() error = %v", err)
		}
		if !strings.Contains(stdout.String(), "complete -c md2site") {
			t.Errorf("stdout should hold the fish script")
		}
	})
}
