package markdown

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestSegment
// ---------------------------------------------------------------------------

func TestSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
		want     []string
	}{
		{
			name: "heading paragraph and list",
			document: "# This is a heading\n\n" +
				"This is a paragraph of text. It has some **bold** and *italic* words inside of it.\n\n" +
				"* This is the first list item in a list block\n* This is a list item\n* This is another list item\n",
			want: []string{
				"# This is a heading",
				"This is a paragraph of text. It has some **bold** and *italic* words inside of it.",
				"* This is the first list item in a list block\n* This is a list item\n* This is another list item",
			},
		},
		{
			name:     "surrounding whitespace trimmed",
			document: "# This is a heading      \n\n   \t This is a paragraph.  ",
			want:     []string{"# This is a heading", "This is a paragraph."},
		},
		{
			name:     "runs of blank lines collapse",
			document: "A\n\nB\n\n\n\nC",
			want:     []string{"A", "B", "C"},
		},
		{
			name:     "odd newline run",
			document: "A\n\n\nB",
			want:     []string{"A", "B"},
		},
		{
			name:     "trim per block",
			document: "  A  \n\n B ",
			want:     []string{"A", "B"},
		},
		{
			name:     "single newline keeps block together",
			document: "line one\nline two",
			want:     []string{"line one\nline two"},
		},
		{
			name:     "empty document",
			document: "",
			want:     []string{},
		},
		{
			name:     "whitespace only",
			document: "  \n\n\t\n\n ",
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Segment(tt.document)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Segment() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestClassify
// ---------------------------------------------------------------------------

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		block string
		want  BlockType
	}{
		{"h1", "# This is a heading", BlockHeading},
		{"h2", "## This is a heading", BlockHeading},
		{"h4", "#### This is a heading", BlockHeading},
		{"h6", "###### This is a heading", BlockHeading},
		{"paragraph", "This is a paragraph of text. It has some **bold** and *italic* words inside of it.", BlockParagraph},
		{"code", "```def dummy_func():\n    print('dummy')\n```", BlockCode},
		{"code on one line", "```code```", BlockCode},
		{"quote", "> I must say\n> I am very impressed!", BlockQuote},
		{"quote without space", ">a\n>b", BlockQuote},
		{"unordered star", "* This is the first list item\n* This is a list item\n* This is another list item", BlockUnorderedList},
		{"unordered dash", "- This is the first list item\n- This is a list item\n- This is another list item", BlockUnorderedList},
		{"ordered", "1. This is the first list item\n2. This is a list item\n3. This is another list item", BlockOrderedList},
		{"ordered past nine", "1. a\n2. b\n3. c\n4. d\n5. e\n6. f\n7. g\n8. h\n9. i\n10. j", BlockOrderedList},
		{"ordered single", "1. only", BlockOrderedList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Classify(tt.block); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.block, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestClassify_CodeFenceLength - Opening and closing fences must not overlap
// ---------------------------------------------------------------------------

func TestClassify_CodeFenceLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		block string
		want  BlockType
	}{
		{"```", BlockParagraph},
		{"````", BlockParagraph},
		{"`````", BlockParagraph},
		{"``````", BlockCode},
		{"```x```", BlockCode},
	}

	for _, tt := range tests {
		if got := Classify(tt.block); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.block, got, tt.want)
		}
	}

	got, err := Render("```")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if want := "<div><p>`</p></div>"; got != want {
		t.Errorf("Render(lone fence) = %q, want %q", got, want)
	}
}

func TestClassify_FallsBackToParagraph(t *testing.T) {
	t.Parallel()

	blocks := []string{
		"####### This is not a heading",
		"############# This is not a heading",
		"This is not a ## heading",
		"#no space",
		"# heading\nwith a second line",
		"```",
		"def dummy_func():\n    print('dummy')\n```",
		"```def dummy_func():\n    print('dummy')",
		"```def dummy_func():\n    print('dummy')\n``",
		"``def dummy_func():\n    print('dummy')\n```",
		"``def dummy_func():\n    print('dummy')\n``",
		"> I must say\n I am very impressed!\n>Well not so...",
		"* This is the first list item\n- This is a list item\n* This is another list item",
		"* This is the first list item\n*This is a list item\n* This is another list item",
		"- This is the first list item\n* This is a list item\n- This is another list item",
		"- This is the first list item\n-This is a list item\n- This is another list item",
		"* a\n- b",
		"1. a\n3. b",
		"1. a\n2. b\n1. c",
		"1. This is the first list item\n3. This is a list item\n3. This is another list item",
		"0. This is the first list item\n1. This is a list item\n2. This is another list item",
		"2. This is the first list item\n3. This is a list item\n4. This is another list item",
		"1. This is the first list item\n2.This is a list item\n3. This is another list item",
	}

	for _, block := range blocks {
		if got := Classify(block); got != BlockParagraph {
			t.Errorf("Classify(%q) = %s, want paragraph", block, got)
		}
	}
}

// ---------------------------------------------------------------------------
// TestParse
// ---------------------------------------------------------------------------

func TestParse(t *testing.T) {
	t.Parallel()

	got := Parse("### Third\n\n# First\n\ntext\n\n> quote")
	want := []Block{
		{Text: "### Third", Type: BlockHeading, Level: 3},
		{Text: "# First", Type: BlockHeading, Level: 1},
		{Text: "text", Type: BlockParagraph},
		{Text: "> quote", Type: BlockQuote},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestBlockTypeString(t *testing.T) {
	t.Parallel()

	if got := BlockOrderedList.String(); got != "ordered list" {
		t.Errorf("String() = %q, want %q", got, "ordered list")
	}
	if got := BlockType(42).String(); got != "BlockType(42)" {
		t.Errorf("String() = %q, want %q", got, "BlockType(42)")
	}
}
