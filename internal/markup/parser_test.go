// internal/markup/parser_test.go
package markup

import (
	"reflect"
	"testing"

	"github.com/solenne/mailwright/internal/document"
)

func leaf(kind document.Kind, runs ...document.Run) *document.Block {
	return &document.Block{Kind: kind, Runs: runs}
}

func para(runs ...document.Run) *document.Block {
	return leaf(document.KindParagraph, runs...)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []*document.Block
	}{
		{
			"plain line",
			"hello",
			[]*document.Block{para(document.Run{Text: "hello"})},
		},
		{
			"trailing newline terminates the last block",
			"hello\n",
			[]*document.Block{para(document.Run{Text: "hello"})},
		},
		{
			"two lines",
			"one\ntwo",
			[]*document.Block{para(document.Run{Text: "one"}), para(document.Run{Text: "two"})},
		},
		{
			"blank interior line",
			"a\n\nb\n",
			[]*document.Block{
				para(document.Run{Text: "a"}),
				para(document.Run{}),
				para(document.Run{Text: "b"}),
			},
		},
		{
			"empty input",
			"",
			[]*document.Block{para(document.Run{})},
		},
		{
			"bold span",
			"a <b>big</b> win",
			[]*document.Block{para(
				document.Run{Text: "a "},
				document.Run{Text: "big", Bold: true},
				document.Run{Text: " win"},
			)},
		},
		{
			"italic span",
			"<i>quietly</i>",
			[]*document.Block{para(document.Run{Text: "quietly", Italic: true})},
		},
		{
			"color span",
			"<color=#ff0000>red</color> plain",
			[]*document.Block{para(
				document.Run{Text: "red", Color: "#ff0000"},
				document.Run{Text: " plain"},
			)},
		},
		{
			"uppercase hex normalizes to lowercase",
			"<color=#FF00AA>x</color>",
			[]*document.Block{para(document.Run{Text: "x", Color: "#ff00aa"})},
		},
		{
			"nested colors restore the outer one",
			"<color=#111111>a<color=#222222>b</color>c</color>",
			[]*document.Block{para(
				document.Run{Text: "a", Color: "#111111"},
				document.Run{Text: "b", Color: "#222222"},
				document.Run{Text: "c", Color: "#111111"},
			)},
		},
		{
			"size 40 makes a heading-1",
			"<size=40>Title</size>",
			[]*document.Block{leaf(document.KindHeading1, document.Run{Text: "Title"})},
		},
		{
			"size 20 makes a heading-2",
			"<size=20>Sub</size>",
			[]*document.Block{leaf(document.KindHeading2, document.Run{Text: "Sub"})},
		},
		{
			"size tag anywhere in the line sets the heading",
			"before <size=40>after",
			[]*document.Block{leaf(document.KindHeading1,
				document.Run{Text: "before "},
				document.Run{Text: "after"},
			)},
		},
		{
			"unknown tag survives as literal text",
			"<blink>x</blink>",
			[]*document.Block{para(document.Run{Text: "<blink>x</blink>"})},
		},
		{
			"unclosed tag survives as literal text",
			"a <b",
			[]*document.Block{para(document.Run{Text: "a <b"})},
		},
		{
			"malformed color survives as literal text",
			"<color=#zzzzzz>x</color>",
			[]*document.Block{para(document.Run{Text: "<color=#zzzzzz>x"})},
		},
		{
			"stray close tags are ignored",
			"</b></color> fine",
			[]*document.Block{para(document.Run{Text: " fine"})},
		},
		{
			"entities decode into text",
			"&lt;b&gt; is text &amp; safe",
			[]*document.Block{para(document.Run{Text: "<b> is text & safe"})},
		},
		{
			"multibyte text passes through",
			"héllo <b>wörld</b>",
			[]*document.Block{para(
				document.Run{Text: "héllo "},
				document.Run{Text: "wörld", Bold: true},
			)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.in)
			if !reflect.DeepEqual(got.Blocks, tt.want) {
				t.Errorf("Parse(%q) blocks = %+v, want %+v", tt.in, got.Blocks, tt.want)
			}
		})
	}
}

func TestParseStateCarriesAcrossLines(t *testing.T) {
	got := Parse("<b>shout\nstill bold</b>\nplain\n")
	want := []*document.Block{
		para(document.Run{Text: "shout", Bold: true}),
		para(document.Run{Text: "still bold", Bold: true}),
		para(document.Run{Text: "plain"}),
	}
	if !reflect.DeepEqual(got.Blocks, want) {
		t.Errorf("Parse() blocks = %+v, want %+v", got.Blocks, want)
	}
}

func TestParseHeadingDoesNotLeakToNextLine(t *testing.T) {
	got := Parse("<size=40>Title</size>\nbody\n")
	if got.Blocks[0].Kind != document.KindHeading1 {
		t.Errorf("first block kind = %v, want %v", got.Blocks[0].Kind, document.KindHeading1)
	}
	if got.Blocks[1].Kind != document.KindParagraph {
		t.Errorf("second block kind = %v, want %v", got.Blocks[1].Kind, document.KindParagraph)
	}
}

func TestParseNeverReturnsEmptyDocument(t *testing.T) {
	for _, in := range []string{"", "\n", "<b></b>", "</size>"} {
		got := Parse(in)
		if len(got.Blocks) == 0 {
			t.Fatalf("Parse(%q) returned no blocks", in)
		}
		for i, b := range got.Blocks {
			if len(b.Runs) == 0 {
				t.Errorf("Parse(%q) block %d has no runs", in, i)
			}
		}
	}
}
