// Package md2site converts Markdown documents into HTML pages.
//
// # Quick Start
//
// Create a converter and convert a document:
//
//	conv, err := md2site.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2site.Input{
//	    Markdown: "# Hello\n\nWorld",
//	    Name:     "hello.md",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.html", result.HTML, 0644)
//
// The result holds the full page (result.HTML), the converted body
// (result.Fragment) and the page title (result.Title).
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (BOM removal, line endings, blank lines)
//  2. Front matter extraction (title, layout, draft)
//  3. Markdown to HTML conversion with the selected engine
//  4. Optional rewrite of relative .md links to .html
//  5. Page assembly: {{ Title }} and {{ Content }} substituted into a layout
//
// # Engines
//
// The native engine compiles the small Markdown subset the site format
// defines: headings, paragraphs, fenced code, quotes and flat lists, with
// bold, italic, code, link and image spans. The goldmark engine handles full
// CommonMark with GFM extensions and optional syntax highlighting:
//
//	conv, err := md2site.NewConverter(
//	    md2site.WithEngine(md2site.EngineGoldmark),
//	    md2site.WithHighlighting(true),
//	)
//
// Render exposes the native engine directly and returns the bare fragment:
//
//	html, err := md2site.Render("Some **bold** text")
//	// <div><p>Some <b>bold</b> text</p></div>
//
// # Layouts
//
// Pages are wrapped in a layout. Without options the embedded "default"
// layout is used. Use WithTemplate or WithTemplateFile for a single custom
// template, or WithThemeDir to load named layouts from a directory. A page
// can pick its layout with the "layout" front matter key.
//
// # Parallel Processing
//
// A Converter is safe for concurrent use. ResolveWorkers picks a worker
// count for batch builds from the available CPUs.
//
// # Error Handling
//
// Errors are wrapped with context; use errors.Is with the exported sentinels:
//
//	_, err := conv.Convert(ctx, input)
//	if errors.Is(err, md2site.ErrMissingURL) {
//	    // a link or image has no target
//	}
package md2site
