// Package directive implements the inline formatting directive grammar
// used by directive-annotated localization strings.
//
// Two directive classes exist:
//
//   - Short-format directives: a closed alphabet of single-letter forms
//     (~s~, ~b~, ~r~, ~n~, ~y~, ~p~, ~g~, ~o~, ~h~, ~c~) plus the literal
//     ~COLOR_NET_PLAYER1~. These are the forms subject to cross-language
//     consistency checking.
//   - Long-format directives: canonical named colors (~COLOR_<NAME>~),
//     custom RGB colors (~RGB_<r>_<g>_<b>~), style toggles (~bold~,
//     ~italic~, ~n~, ~h~) and the condensed counters (C) / (/C). These
//     drive the style state machine for preview rendering.
//
// Color shorthands map to canonical long forms through an ordered rewrite
// table. No rewrite output is itself a rewrite input, so the result is
// order-independent despite sequential application (asserted in tests).
package directive

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind classifies a token produced by Tokenize.
type Kind int

const (
	// Text is a plain-text fragment between directives (may be empty).
	Text Kind = iota
	// ToggleBold flips the bold flag (~h~ or ~bold~).
	ToggleBold
	// ToggleItalic flips the italic flag (~italic~).
	ToggleItalic
	// ToggleNewline flips the newline flag (~n~).
	ToggleNewline
	// CondensedOpen increments the condensed depth ((C)).
	CondensedOpen
	// CondensedClose decrements the condensed depth ((/C)).
	CondensedClose
	// ColorNamed selects a named color (~COLOR_<NAME>~ or a color shorthand).
	ColorNamed
	// ColorCustom selects an inline RGB color (~RGB_<r>_<g>_<b>~).
	ColorCustom
	// Other is a directive-shaped token the grammar recognizes but cannot
	// classify further (e.g. an RGB triple with an out-of-range octet).
	Other
)

// Token is one element of a tokenized string: either a plain-text fragment
// or a classified directive. Offset is the byte offset of the token within
// the input. Concatenating the Literal fields of a token stream reproduces
// the input exactly.
type Token struct {
	Kind    Kind
	Literal string
	Offset  int

	// Name is the color name for ColorNamed tokens ("RED", "PURE_WHITE", ...).
	Name string
	// R, G, B are the octets for ColorCustom tokens.
	R, G, B uint8
}

// Match is a located occurrence of a literal within a string, used for the
// validation views (short-format directives and placeholder variables).
type Match struct {
	Literal string
	Offset  int
}

// ---------------------------------------------------------------------------
// Rewrite table
// ---------------------------------------------------------------------------

// RewriteRule maps one color shorthand to its canonical long form.
type RewriteRule struct {
	From string
	To   string
}

// RewriteTable is the ordered shorthand-to-canonical rewrite table.
// Invariant: no rule's To contains any rule's From, so applying the rules
// front-to-back yields the same result as any other order.
var RewriteTable = []RewriteRule{
	{From: "~s~", To: "~COLOR_PURE_WHITE~"},
	{From: "~b~", To: "~COLOR_BLUE~"},
	{From: "~r~", To: "~COLOR_RED~"},
	{From: "~y~", To: "~COLOR_YELLOW~"},
	{From: "~p~", To: "~COLOR_PURPLE~"},
	{From: "~g~", To: "~COLOR_GREEN~"},
	{From: "~o~", To: "~COLOR_ORANGE~"},
	{From: "~c~", To: "~COLOR_GREY~"},
}

// Rewrite expands all color shorthands in text to their canonical
// ~COLOR_<NAME>~ forms. Toggle shorthands (~h~, ~n~) are left untouched.
func Rewrite(text string) string {
	for _, rule := range RewriteTable {
		text = strings.ReplaceAll(text, rule.From, rule.To)
	}
	return text
}

// shorthandColor maps a shorthand letter to its canonical color name.
// Derived from RewriteTable so the two cannot drift apart.
var shorthandColor = func() map[byte]string {
	m := make(map[byte]string, len(RewriteTable))
	for _, rule := range RewriteTable {
		name := strings.TrimSuffix(strings.TrimPrefix(rule.To, "~COLOR_"), "~")
		m[rule.From[1]] = name
	}
	return m
}()

// ---------------------------------------------------------------------------
// Regular expressions
// ---------------------------------------------------------------------------

var (
	// shortFormatRE matches the short-format directive class checked for
	// cross-language consistency.
	shortFormatRE = regexp.MustCompile(`~(?:[sbrnypgohc]|COLOR_NET_PLAYER1)~`)

	// longFormatRE matches the union of every directive literal form. The
	// alternatives are mutually exclusive by delimiter shape, so overlapping
	// matches cannot occur for well-formed input. An unterminated ~ never
	// matches and is left as plain text.
	longFormatRE = regexp.MustCompile(`~(?:COLOR_[A-Z0-9_]+|RGB_[0-9]{1,3}_[0-9]{1,3}_[0-9]{1,3}|bold|italic|[sbrnypgohc])~|\(C\)|\(/C\)`)

	// variableRE matches numbered placeholder variables like {0}.
	variableRE = regexp.MustCompile(`\{[0-9]+\}`)

	// spacingRE matches a short-format directive that is surrounded by
	// whitespace, or any run of two or more whitespace characters.
	spacingRE = regexp.MustCompile(`\s~[sbrnypgohc]~\s|\s\s+`)

	// punctuationRE matches a space before a sentence-terminating
	// punctuation mark, or a space, short-format directive and punctuation
	// mark with no intervening space.
	punctuationRE = regexp.MustCompile(`\s[.,?!]|\s~(?:[sbrnypgohc]|COLOR_NET_PLAYER1)~[.,?!]`)
)

// ---------------------------------------------------------------------------
// Tokenizer
// ---------------------------------------------------------------------------

// Tokenize splits text into an ordered stream of plain-text fragments and
// classified directives. Fragments appear between (and around) directives
// and may be empty; the stream is lossless: concatenating every token's
// Literal reproduces text byte for byte. Tokenize is pure and stateless.
func Tokenize(text string) []Token {
	spans := longFormatRE.FindAllStringIndex(text, -1)
	tokens := make([]Token, 0, 2*len(spans)+1)
	prev := 0
	for _, span := range spans {
		tokens = append(tokens, Token{Kind: Text, Literal: text[prev:span[0]], Offset: prev})
		tokens = append(tokens, classify(text[span[0]:span[1]], span[0]))
		prev = span[1]
	}
	tokens = append(tokens, Token{Kind: Text, Literal: text[prev:], Offset: prev})
	return tokens
}

// classify turns one matched directive literal into a Token.
func classify(lit string, offset int) Token {
	tok := Token{Literal: lit, Offset: offset}
	switch lit {
	case "~h~", "~bold~":
		tok.Kind = ToggleBold
	case "~italic~":
		tok.Kind = ToggleItalic
	case "~n~":
		tok.Kind = ToggleNewline
	case "(C)":
		tok.Kind = CondensedOpen
	case "(/C)":
		tok.Kind = CondensedClose
	default:
		inner := strings.Trim(lit, "~")
		switch {
		case strings.HasPrefix(inner, "COLOR_"):
			tok.Kind = ColorNamed
			tok.Name = strings.TrimPrefix(inner, "COLOR_")
		case strings.HasPrefix(inner, "RGB_"):
			r, g, b, ok := parseOctets(strings.TrimPrefix(inner, "RGB_"))
			if !ok {
				tok.Kind = Other
				break
			}
			tok.Kind = ColorCustom
			tok.R, tok.G, tok.B = r, g, b
		default:
			// Single-letter color shorthand.
			tok.Kind = ColorNamed
			tok.Name = shorthandColor[inner[0]]
		}
	}
	return tok
}

// parseOctets parses the three _-separated decimal octets of a custom color.
func parseOctets(s string) (r, g, b uint8, ok bool) {
	parts := strings.Split(s, "_")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	var out [3]uint8
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n > 255 {
			return 0, 0, 0, false
		}
		out[i] = uint8(n)
	}
	return out[0], out[1], out[2], true
}

// ---------------------------------------------------------------------------
// Validation views
// ---------------------------------------------------------------------------

// ShortFormats returns every short-format directive occurrence in text, in
// order, with byte offsets. This is the view the consistency checks operate
// on; it works on the raw, pre-rewrite text.
func ShortFormats(text string) []Match {
	return findAll(shortFormatRE, text)
}

// Placeholders returns every numbered placeholder variable occurrence
// ({0}, {1}, ...) in text, in order, preserving duplicates.
func Placeholders(text string) []Match {
	return findAll(variableRE, text)
}

func findAll(re *regexp.Regexp, text string) []Match {
	spans := re.FindAllStringIndex(text, -1)
	if spans == nil {
		return nil
	}
	matches := make([]Match, len(spans))
	for i, span := range spans {
		matches[i] = Match{Literal: text[span[0]:span[1]], Offset: span[0]}
	}
	return matches
}

// StripShortFormats removes every short-format directive from text.
func StripShortFormats(text string) string {
	return shortFormatRE.ReplaceAllString(text, "")
}

// StrayMarkerOffset returns the byte offset in text of the first ~ that is
// not part of a recognized short-format directive, or -1 if none exists.
// The offset refers to the original text, not the stripped text.
func StrayMarkerOffset(text string) int {
	spans := shortFormatRE.FindAllStringIndex(text, -1)
	next := 0
	for i := 0; i < len(text); i++ {
		if next < len(spans) && i == spans[next][0] {
			i = spans[next][1] - 1
			next++
			continue
		}
		if text[i] == '~' {
			return i
		}
	}
	return -1
}

// SpacingIssue returns the byte offset of the first spacing problem (a
// short-format directive surrounded by whitespace, or two or more
// consecutive whitespace characters), or -1. The offset points at the last
// character of the offending run.
func SpacingIssue(text string) int {
	span := spacingRE.FindStringIndex(text)
	if span == nil {
		return -1
	}
	return span[1] - 1
}

// PunctuationIssue returns the byte offset of the first punctuation
// placement problem, or -1.
func PunctuationIssue(text string) int {
	span := punctuationRE.FindStringIndex(text)
	if span == nil {
		return -1
	}
	return span[0]
}

// exempt lists the short-format directives that may legitimately appear
// twice in a row: toggles and the default-color reset.
var exempt = map[string]bool{
	"~h~": true,
	"~n~": true,
	"~s~": true,
}

// Exempt reports whether a short-format directive is allowed to repeat
// back-to-back without triggering the duplicate check.
func Exempt(literal string) bool {
	return exempt[literal]
}
