package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// renderFlags holds flags that configure page conversion.
type renderFlags struct {
	engine       string
	template     string
	layout       string
	themeDir     string
	rewriteLinks bool
	highlight    bool
	strictTitle  bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common    commonFlags
	render    renderFlags
	staticDir string
	publicDir string
	workers   int
	drafts    bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common commonFlags
	render renderFlags
	output string
}

// initFlags holds all flags for the init command.
type initFlags struct {
	common commonFlags
	force  bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addRenderFlags adds page conversion flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVarP(&f.engine, "engine", "e", "", "markdown engine: native, goldmark")
	fs.StringVarP(&f.template, "template", "t", "", "page template file (overrides --layout)")
	fs.StringVarP(&f.layout, "layout", "l", "", "layout name")
	fs.StringVar(&f.themeDir, "theme", "", "theme directory with layouts/ and styles/")
	fs.BoolVar(&f.rewriteLinks, "rewrite-links", false, "rewrite relative .md links to .html")
	fs.BoolVar(&f.highlight, "highlight", false, "highlight code blocks (goldmark engine)")
	fs.BoolVar(&f.strictTitle, "strict-title", false, "fail pages without a \"# \" title")
}

// registerBuildFlags adds every build flag to fs. Shared with completion.
func registerBuildFlags(fs *flag.FlagSet, f *buildFlags) {
	fs.StringVarP(&f.publicDir, "output", "o", "", "public output directory")
	fs.StringVarP(&f.staticDir, "static", "s", "", "static files directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.drafts, "drafts", false, "include pages marked draft")

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)
}

// registerConvertFlags adds every convert flag to fs. Shared with completion.
func registerConvertFlags(fs *flag.FlagSet, f *convertFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output HTML file (default: stdout)")

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)
}

// registerInitFlags adds every init flag to fs. Shared with completion.
func registerInitFlags(fs *flag.FlagSet, f *initFlags) {
	fs.BoolVarP(&f.force, "force", "f", false, "overwrite an existing site.yaml")

	addCommonFlags(fs, &f.common)
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	f := &buildFlags{}
	registerBuildFlags(fs, f)
	fs.Usage = func() { printBuildUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}
	registerConvertFlags(fs, f)
	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseInitFlags parses init command flags and returns positional args.
func parseInitFlags(args []string) (*initFlags, []string, error) {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	f := &initFlags{}
	registerInitFlags(fs, f)
	fs.Usage = func() { printInitUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
