package locfile

import (
	"errors"
	"strings"
	"testing"
)

const sampleDoc = `<Root>
	<Entry Id="GREETING">
		<String xml:lang="en-US">Hello</String>
		<String xml:lang="de-DE">a &amp; b</String>
	</Entry>
</Root>
`

func TestParseTree(t *testing.T) {
	root, err := Parse(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if root.Name != "Root" {
		t.Fatalf("root name = %q, want Root", root.Name)
	}
	if len(root.Children) != 1 {
		t.Fatalf("root children = %d, want 1", len(root.Children))
	}

	entry := root.Children[0]
	if entry.Name != "Entry" {
		t.Fatalf("entry name = %q", entry.Name)
	}
	if id, ok := entry.Attr("Id"); !ok || id != "GREETING" {
		t.Fatalf("entry Id = %q, %v", id, ok)
	}
	if _, ok := entry.Attr("Missing"); ok {
		t.Fatal("Attr(Missing) should not exist")
	}
	if len(entry.Children) != 2 {
		t.Fatalf("entry children = %d, want 2", len(entry.Children))
	}

	en := entry.Children[0]
	if lang, ok := en.Attr("xml:lang"); !ok || lang != "en-US" {
		t.Fatalf("xml:lang = %q, %v", lang, ok)
	}
	if en.Text != "Hello" {
		t.Fatalf("en text = %q", en.Text)
	}

	de := entry.Children[1]
	if de.Text != "a & b" {
		t.Fatalf("entities not decoded: %q", de.Text)
	}
}

func TestParsePositions(t *testing.T) {
	root, err := Parse(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if root.Pos != (Position{Line: 1, Col: 1}) {
		t.Fatalf("root pos = %#v", root.Pos)
	}

	entry := root.Children[0]
	if entry.Pos != (Position{Line: 2, Col: 2}) {
		t.Fatalf("entry pos = %#v, want line 2 col 2", entry.Pos)
	}

	// Text content of the en-US string starts right after its start tag:
	// two tabs, then <String xml:lang="en-US"> which is 25 characters.
	en := entry.Children[0]
	if en.Pos != (Position{Line: 3, Col: 3}) {
		t.Fatalf("string pos = %#v, want line 3 col 3", en.Pos)
	}
	if en.TextPos != (Position{Line: 3, Col: 28}) {
		t.Fatalf("string text pos = %#v, want line 3 col 28", en.TextPos)
	}
}

func TestParseErrorHasPosition(t *testing.T) {
	_, err := Parse(strings.NewReader("<Root><Entry></Root>"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T, want *ParseError", err)
	}
	if perr.Pos.Line != 1 || perr.Pos.Col < 1 {
		t.Fatalf("parse error pos = %#v", perr.Pos)
	}
	if strings.HasPrefix(perr.Msg, "XML syntax error") {
		t.Fatalf("decoder prefix not stripped: %q", perr.Msg)
	}
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("empty input error = %v, want *ParseError", err)
	}
}

func TestParseEmptyElementText(t *testing.T) {
	root, err := Parse(strings.NewReader(`<Root><String xml:lang="en-US"></String></Root>`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if root.Children[0].Text != "" {
		t.Fatalf("empty element text = %q", root.Children[0].Text)
	}
}
