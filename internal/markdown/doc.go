// Package markdown compiles a small Markdown dialect into an htmlnode tree.
//
// Compilation runs in three stages:
//
//  1. Segment splits the document into blocks on blank lines.
//  2. Classify assigns each block one BlockType (heading, code, quote,
//     unordered list, ordered list, or paragraph as the fallback).
//  3. CompileBlock turns each block into a node subtree, running paragraph
//     and list item text through the inline tokenizer (bold, italic, code,
//     images and links).
//
// ToHTMLNode wraps the compiled blocks in a root <div>. Every function in the
// package is pure and safe for concurrent use.
//
// Unterminated inline delimiters are kept as literal text, except that a lone
// "**" is consumed by the italic rule as an empty span and dropped. Blocks
// that do not satisfy a rule for every line fall back to paragraphs. Links
// and images with an empty URL or label are kept. The dialect has
// no nested emphasis, tables, footnotes, raw HTML or reference-style links.
package markdown
