package markdown

import (
	"strconv"
	"strings"
)

// Block markers.
const (
	blockSeparator = "\n\n"
	codeFence      = "```"
	quoteMarker    = ">"
	maxHeadingLvl  = 6
)

// unorderedMarkers are the accepted unordered list prefixes. A list uses one
// of them for every line.
var unorderedMarkers = []string{"* ", "- "}

// BlockType identifies the kind of a block.
type BlockType int

// Block types. BlockParagraph is the fallback for anything else.
const (
	BlockParagraph BlockType = iota
	BlockHeading
	BlockCode
	BlockQuote
	BlockUnorderedList
	BlockOrderedList
)

var blockTypeNames = [...]string{
	BlockParagraph:     "paragraph",
	BlockHeading:       "heading",
	BlockCode:          "code",
	BlockQuote:         "quote",
	BlockUnorderedList: "unordered list",
	BlockOrderedList:   "ordered list",
}

func (t BlockType) String() string {
	if t < 0 || int(t) >= len(blockTypeNames) {
		return "BlockType(" + strconv.Itoa(int(t)) + ")"
	}
	return blockTypeNames[t]
}

// Block is a classified unit of a document.
type Block struct {
	Text  string
	Type  BlockType
	Level int // heading level, 0 for other types
}

// NewBlock classifies text and returns the resulting Block.
func NewBlock(text string) Block {
	b := Block{Text: text, Type: Classify(text)}
	if b.Type == BlockHeading {
		b.Level = headingLevel(text)
	}
	return b
}

// Parse segments a document and classifies every block, in document order.
func Parse(document string) []Block {
	texts := Segment(document)
	blocks := make([]Block, 0, len(texts))
	for _, text := range texts {
		blocks = append(blocks, NewBlock(text))
	}
	return blocks
}

// Segment splits a document on blank lines. Each block is trimmed of
// surrounding whitespace and empty blocks are dropped.
func Segment(document string) []string {
	pieces := strings.Split(document, blockSeparator)
	blocks := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		blocks = append(blocks, piece)
	}
	return blocks
}

// Classify returns the type of a block. Rules are tried in order and the
// first match wins:
//
//   - heading: a single line of 1-6 '#' followed by a space
//   - code: starts and ends with a ``` fence
//   - quote: every line starts with '>'
//   - unordered list: every line starts with "* ", or every line with "- "
//   - ordered list: line i starts with "i. ", counting from 1
//
// Anything else is a paragraph.
func Classify(block string) BlockType {
	if isHeading(block) {
		return BlockHeading
	}
	if isCode(block) {
		return BlockCode
	}

	lines := strings.Split(block, "\n")
	if allHavePrefix(lines, quoteMarker) {
		return BlockQuote
	}
	for _, marker := range unorderedMarkers {
		if allHavePrefix(lines, marker) {
			return BlockUnorderedList
		}
	}
	if isOrderedList(lines) {
		return BlockOrderedList
	}
	return BlockParagraph
}

// headingLevel counts the leading '#' characters of a line.
func headingLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	return n
}

func isHeading(block string) bool {
	if strings.Contains(block, "\n") {
		return false
	}
	n := headingLevel(block)
	return n >= 1 && n <= maxHeadingLvl && n < len(block) && block[n] == ' '
}

// isCode requires two distinct fences, so a lone ``` stays a paragraph.
func isCode(block string) bool {
	return len(block) >= 2*len(codeFence) &&
		strings.HasPrefix(block, codeFence) &&
		strings.HasSuffix(block, codeFence)
}

func allHavePrefix(lines []string, prefix string) bool {
	for _, line := range lines {
		if !strings.HasPrefix(line, prefix) {
			return false
		}
	}
	return true
}

func isOrderedList(lines []string) bool {
	for i, line := range lines {
		if !strings.HasPrefix(line, orderedMarker(i+1)) {
			return false
		}
	}
	return true
}

// orderedMarker returns the prefix expected on the n-th line of an ordered list.
func orderedMarker(n int) string {
	return strconv.Itoa(n) + ". "
}
