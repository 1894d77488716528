// Package style implements the stateful interpreter that turns a directive
// token stream into a sequence of styled text runs for preview rendering.
//
// The interpreter never fails: unknown color names degrade to the default
// color and structurally odd input only produces fewer runs. Validation of
// the input is done elsewhere; this package is for rendering.
package style

import (
	"github.com/minios-linux/loccheck/directive"
	"github.com/minios-linux/loccheck/hudcolor"
)

// Run is a contiguous span of text sharing one style state, or an explicit
// line break (Break true, Text empty).
type Run struct {
	Text      string
	Bold      bool
	Italic    bool
	Condensed bool
	Color     hudcolor.RGBA
	Break     bool
}

// state is the mutable interpreter state. condensed is a depth counter
// (nesting of (C)/(/C)), clamped at zero; the rest are toggles except
// color, which is overwritten by color directives.
type state struct {
	bold      bool
	italic    bool
	condensed int
	color     hudcolor.RGBA
	newline   bool
}

// Render consumes a token stream (as produced by directive.Tokenize) and
// yields the styled runs in order. Each text fragment is emitted with the
// state in effect where it starts: directives style the text that follows
// them, never the text before them. Empty fragments are suppressed, but a
// line break is still emitted whenever the newline flag transitions.
func Render(tokens []directive.Token) []Run {
	st := state{color: hudcolor.Default}
	var runs []Run

	for _, tok := range tokens {
		switch tok.Kind {
		case directive.Text:
			if tok.Literal == "" {
				continue
			}
			runs = append(runs, Run{
				Text:      tok.Literal,
				Bold:      st.bold,
				Italic:    st.italic,
				Condensed: st.condensed > 0,
				Color:     st.color,
			})
		case directive.ToggleBold:
			st.bold = !st.bold
		case directive.ToggleItalic:
			st.italic = !st.italic
		case directive.ToggleNewline:
			st.newline = !st.newline
			runs = append(runs, Run{Break: true})
		case directive.CondensedOpen:
			st.condensed++
		case directive.CondensedClose:
			if st.condensed > 0 {
				st.condensed--
			}
		case directive.ColorNamed:
			if c, ok := hudcolor.Resolve(tok.Name); ok {
				st.color = c
			} else {
				st.color = hudcolor.Default
			}
		case directive.ColorCustom:
			st.color = hudcolor.RGBA{R: tok.R, G: tok.G, B: tok.B, A: 255}
		}
	}
	return runs
}

// RenderText is the full pipeline for one raw translation string:
// shorthand rewrite, tokenization, interpretation.
func RenderText(text string) []Run {
	return Render(directive.Tokenize(directive.Rewrite(text)))
}
