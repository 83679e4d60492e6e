package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	setMaxProcs(isVerbose(os.Args[1:]), os.Stderr)
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// setMaxProcs matches GOMAXPROCS to the container CPU quota, which sizes
// the build worker pool. Its log lines are shown in verbose mode only.
func setMaxProcs(verbose bool, w io.Writer) {
	logger := func(string, ...any) {}
	if verbose {
		logger = func(format string, args ...any) {
			fmt.Fprintf(w, format+"\n", args...)
		}
	}
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(logger))
}

// isVerbose reports whether args request verbose output.
func isVerbose(args []string) bool {
	return slices.Contains(args, "-v") || slices.Contains(args, "--verbose")
}

// runMain dispatches a command line and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]

	// "md2site page.md" is shorthand for "md2site convert page.md".
	if !isCommand(cmd) && looksLikeMarkdown(cmd) {
		cmd, rest = "convert", args[1:]
	}

	switch cmd {
	case "build":
		flags, positional, err := parseBuildFlags(rest)
		if err != nil {
			return flagError(env, err)
		}
		warnUnknownEnvVars(env.Stderr)
		err = withSignals(func(ctx context.Context) error {
			return runBuild(ctx, positional, flags, env)
		})
		return report(env, err, flags.common.config)

	case "convert":
		flags, positional, err := parseConvertFlags(rest)
		if err != nil {
			return flagError(env, err)
		}
		warnUnknownEnvVars(env.Stderr)
		err = withSignals(func(ctx context.Context) error {
			return runConvert(ctx, positional, flags, env)
		})
		return report(env, err, flags.common.config)

	case "init":
		flags, positional, err := parseInitFlags(rest)
		if err != nil {
			return flagError(env, err)
		}
		return report(env, runInit(positional, flags, env), "")

	case "completion":
		return report(env, runCompletion(rest, env), "")

	case "version", "--version":
		fmt.Fprintf(env.Stdout, "md2site %s\n", Version)
		return ExitSuccess

	case "help", "-h", "--help":
		return runHelp(rest, env)

	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// commands lists the subcommand names runMain dispatches.
var commands = []string{"build", "convert", "init", "completion", "version", "help"}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	return slices.Contains(commands, arg)
}

// looksLikeMarkdown reports whether arg is a markdown file path.
func looksLikeMarkdown(arg string) bool {
	return isMarkdownFile(arg)
}

// withSignals runs fn with a context canceled on interrupt.
func withSignals(fn func(ctx context.Context) error) error {
	ctx, stop := notifyContext(context.Background())
	defer stop()
	return fn(ctx)
}

// flagError reports a flag parsing error. -h and --help are not errors.
func flagError(env *Environment, err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "error: %v\n", err)
	return ExitUsage
}

// report prints err with its hint and returns the matching exit code.
func report(env *Environment, err error, configName string) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, configName))
	return exitCodeFor(err)
}
