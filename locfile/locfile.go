// Package locfile implements reading of localization XML files into a
// generic element tree with source positions.
//
// The reader is schema-agnostic: it produces elements, attributes and
// character data only. Every element carries the 1-based line/column of
// its opening < and the position where its text content starts, so that
// validation diagnostics can point into the original file.
package locfile

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Position is a 1-based line/column location in a source file.
type Position struct {
	Line int
	Col  int
}

// Attr is a single attribute of an element. Namespace prefixes are kept in
// Name ("xml:lang", not "lang").
type Attr struct {
	Name  string
	Value string
}

// Element is one node of the parsed tree. Text is the concatenation of all
// character data directly inside the element, entity-decoded.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
	Text     string

	// Pos is the position of the element's opening <.
	Pos Position
	// TextPos is the position immediately after the start tag, i.e. where
	// the element's text content begins.
	TextPos Position
}

// Attr returns the value of the named attribute and whether it exists.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// ParseError is a structural parse failure with the position the decoder
// had reached. It maps to a Fatal diagnostic: the file is skipped and
// processing continues with the next one.
type ParseError struct {
	Pos Position
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Col, e.Msg)
}

// ParseFile reads and parses one XML file.
func ParseFile(path string) (*Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads an XML document and returns its root element.
func Parse(r io.Reader) (*Element, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	lines := lineOffsets(data)
	dec := xml.NewDecoder(bytes.NewReader(data))

	var root *Element
	var stack []*Element

	for {
		start := dec.InputOffset()
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Pos: positionAt(lines, dec.InputOffset()), Msg: errMessage(err)}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{
				Name:    t.Name.Local,
				Pos:     positionAt(lines, start),
				TextPos: positionAt(lines, dec.InputOffset()),
			}
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, Attr{Name: attrName(a.Name), Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, &ParseError{Pos: el.Pos, Msg: "multiple root elements"}
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, &ParseError{Pos: Position{Line: 1, Col: 1}, Msg: "no root element"}
	}
	return root, nil
}

// attrName reconstructs the prefixed attribute name. encoding/xml resolves
// the reserved xml prefix to its namespace URL; anything else keeps the
// resolved space as prefix.
func attrName(n xml.Name) string {
	switch n.Space {
	case "":
		return n.Local
	case "xml", "http://www.w3.org/XML/1998/namespace":
		return "xml:" + n.Local
	default:
		return n.Space + ":" + n.Local
	}
}

// errMessage strips the decoder's "XML syntax error on line N:" prefix;
// the position is reported separately.
func errMessage(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx >= 0 && strings.HasPrefix(msg, "XML syntax error") {
		return msg[idx+2:]
	}
	return msg
}

// lineOffsets returns the byte offset of the start of every line.
func lineOffsets(data []byte) []int {
	offsets := []int{0}
	for i, b := range data {
		if b == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// positionAt converts a byte offset into a 1-based line/column position.
func positionAt(lines []int, offset int64) Position {
	off := int(offset)
	line := sort.Search(len(lines), func(i int) bool { return lines[i] > off }) - 1
	return Position{Line: line + 1, Col: off - lines[line] + 1}
}
