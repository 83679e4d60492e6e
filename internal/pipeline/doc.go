// Package pipeline implements the stages that turn a Markdown page into a
// finished HTML page:
//   - Markdown preprocessing (line normalization, BOM removal)
//   - YAML front matter parsing (title, layout, draft)
//   - Markdown to HTML fragment conversion, with the native compiler or goldmark
//   - Title extraction from the first level-one heading
//   - Relative .md link rewriting for generated sites
//   - Page assembly from a template with {{ Title }} and {{ Content }}
//
// File discovery, static copying and output writing live in the CLI; this
// package works on strings only.
package pipeline
