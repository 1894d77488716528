package checks

import "github.com/minios-linux/loccheck/directive"

// Signature is the formatting requirement an entry's reference translation
// imposes on every other translation: the set of short-format directives
// that must appear, the directive the string must end with, and the
// placeholder variables that must be present.
type Signature struct {
	// Required is the set of short-format directive literals found in the
	// reference translation.
	Required map[string]bool
	// RequiredOrder lists the required literals in first-occurrence order,
	// for deterministic diagnostic messages.
	RequiredOrder []string
	// Terminal is the literal of the last short-format directive in the
	// reference translation. Empty when the reference uses none, in which
	// case the entry carries no formatting requirement.
	Terminal string
	// Variables lists the placeholder literals ({0}, {1}, ...) found in
	// the reference translation, in order, duplicates preserved.
	Variables []string
}

// HasFormatting reports whether the entry carries a formatting
// requirement. When false, the invalid/missing/duplicate/terminal checks
// are skipped for every translation of the entry.
func (s Signature) HasFormatting() bool {
	return s.Terminal != ""
}

// ExtractSignature derives the formatting signature from the
// reference-language translation text.
func ExtractSignature(text string) Signature {
	sig := Signature{Required: make(map[string]bool)}

	formats := directive.ShortFormats(text)
	for _, m := range formats {
		if !sig.Required[m.Literal] {
			sig.Required[m.Literal] = true
			sig.RequiredOrder = append(sig.RequiredOrder, m.Literal)
		}
	}
	if len(formats) > 0 {
		sig.Terminal = formats[len(formats)-1].Literal
	}

	for _, m := range directive.Placeholders(text) {
		sig.Variables = append(sig.Variables, m.Literal)
	}
	return sig
}
