package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build       Generate the site from the content directory")
	fmt.Fprintln(w, "  convert     Convert one markdown file to an HTML page")
	fmt.Fprintln(w, "  init        Create site.yaml and a sample page")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2site help <command>' for details on a specific command.")
}

// printRenderUsage prints the flags shared by build and convert.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -e, --engine <s>          Markdown engine: native, goldmark")
	fmt.Fprintln(w, "  -t, --template <path>     Page template file (overrides --layout)")
	fmt.Fprintln(w, "  -l, --layout <name>       Layout name (default: default)")
	fmt.Fprintln(w, "      --theme <dir>         Theme directory with layouts/ and styles/")
	fmt.Fprintln(w, "      --rewrite-links       Rewrite relative .md links to .html")
	fmt.Fprintln(w, "      --highlight           Highlight code blocks (goldmark engine)")
	fmt.Fprintln(w, "      --strict-title        Fail pages without a \"# \" title")
	fmt.Fprintln(w)
}

// printOutputControlUsage prints the flags shared by every command.
func printOutputControlUsage(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site build [content-dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate the site. The public directory is replaced by a copy of the")
	fmt.Fprintln(w, "static directory, then each .md or .markdown file under the content")
	fmt.Fprintln(w, "directory becomes an .html page at the same relative path.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  content-dir    Markdown sources (default: site.contentDir, \"content\")")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Public output directory (default: public)")
	fmt.Fprintln(w, "  -s, --static <dir>        Static files directory (default: static)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --drafts              Include pages marked draft")
	fmt.Fprintln(w)
	printRenderUsage(w)
	printOutputControlUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2SITE_CONFIG, MD2SITE_CONTENT_DIR, MD2SITE_PUBLIC_DIR,")
	fmt.Fprintln(w, "  MD2SITE_ENGINE, MD2SITE_WORKERS")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site convert <file.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert one markdown file to an HTML page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
	fmt.Fprintln(w)
	printRenderUsage(w)
	printOutputControlUsage(w)
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site init [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Create site.yaml, content/index.md and static/ in dir (default: .).")
	fmt.Fprintln(w, "Existing pages are kept.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --force               Overwrite an existing site.yaml")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "convert":
		printConvertUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2site version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2site help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
