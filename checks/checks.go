// Package checks implements the consistency validator for localization
// XML files: schema checks over the element tree, signature extraction
// from the reference language and the per-translation formatting,
// placeholder, spacing and punctuation checks.
//
// All state of a validation run lives in an explicit Context threaded
// through every call. There is no package-level state; a Context per run
// keeps the validator testable in isolation, and runs sharded by file can
// merge their aggregates afterwards (the used-ID set must be shared or
// merged before duplicate detection is final).
package checks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/minios-linux/loccheck/directive"
	"github.com/minios-linux/loccheck/locfile"
	"github.com/minios-linux/loccheck/preview"
	"github.com/minios-linux/loccheck/report"
)

// ReferenceLang is the language tag whose translation defines each
// entry's formatting and variable signature.
const ReferenceLang = "en-US"

// langAttr is the only attribute allowed on String elements.
const langAttr = "xml:lang"

// Context carries all mutable state of one validation run.
type Context struct {
	Reporter *report.Reporter

	// UsedIDs tracks entry identifiers across all files of the run, so
	// duplicates are detected globally rather than per file.
	UsedIDs map[string]bool

	// ShowLang, when set, enables the missing-translation check for that
	// language tag.
	ShowLang string
	// DisplayLimit caps list lengths in messages and the number of
	// missing-language diagnostics that are printed (further ones are
	// still counted).
	DisplayLimit int

	// TotalStrings counts validated entries; duplicates count once.
	TotalStrings int
	// MissingLang counts entries lacking a ShowLang translation.
	MissingLang int

	// Preview, when non-nil, accumulates the HTML formatting preview.
	Preview *preview.Document
}

// NewContext returns a Context with the defaults of the original tool.
func NewContext(rep *report.Reporter) *Context {
	return &Context{
		Reporter:     rep,
		UsedIDs:      make(map[string]bool),
		DisplayLimit: 10,
	}
}

// CheckFile parses and validates one XML file. A structural parse failure
// is reported as fatal and the file is skipped; all other findings are
// per-entry diagnostics and never stop processing.
func (ctx *Context) CheckFile(path string) {
	if ctx.Preview != nil {
		ctx.Preview.AddFile(path)
	}

	root, err := locfile.ParseFile(path)
	if err != nil {
		var perr *locfile.ParseError
		if errors.As(err, &perr) {
			ctx.Reporter.Fatalf([]string{path}, &perr.Pos, "Invalid file: %s", perr.Msg)
		} else {
			ctx.Reporter.Errorf([]string{path}, nil, "Invalid file: %v", err)
		}
		return
	}
	ctx.CheckRoot(path, root)
}

// CheckRoot validates an already-parsed document.
func (ctx *Context) CheckRoot(path string, root *locfile.Element) {
	loc := []string{path, root.Name}
	for _, child := range root.Children {
		if !ctx.checkKnownTag(child, []string{"Entry"}, loc) {
			continue
		}
		ctx.checkEntry(child, loc)
		ctx.TotalStrings++
	}
}

// checkKnownTag reports an unknown element name. The expected-tag list in
// the message is capped at DisplayLimit.
func (ctx *Context) checkKnownTag(el *locfile.Element, known []string, loc []string) bool {
	for _, k := range known {
		if el.Name == k {
			return true
		}
	}
	shown := known
	if len(shown) > ctx.DisplayLimit {
		shown = shown[:ctx.DisplayLimit]
	}
	ctx.Reporter.Errorf(loc, &el.Pos, "Unknown tag: '%s', expected one of these: %s",
		el.Name, strings.Join(shown, ", "))
	return false
}

// checkEntry validates one Entry element: identifier presence and
// uniqueness, the contained String elements, and the missing-language
// check for the selected language.
func (ctx *Context) checkEntry(entry *locfile.Element, loc []string) {
	id, hasID := entry.Attr("Id")
	if !hasID {
		ctx.Reporter.Errorf(loc, &entry.Pos, "Found element without id!")
	} else {
		if ctx.UsedIDs[id] {
			ctx.Reporter.Errorf(loc, &entry.Pos, "Found element duplicate with id '%s'!", id)
			ctx.TotalStrings--
		}
		ctx.UsedIDs[id] = true
		loc = append(loc, fmt.Sprintf("%s('%s')", entry.Name, id))
		if ctx.Preview != nil {
			ctx.Preview.AddEntry(id)
		}
	}

	translations, sig, foundLangs := ctx.analyzeEntry(entry, loc)
	for _, tr := range translations {
		ctx.checkTranslation(tr, sig, loc)
	}

	if ctx.ShowLang != "" && !contains(foundLangs, ctx.ShowLang) {
		if ctx.MissingLang <= ctx.DisplayLimit {
			ctx.Reporter.WarnOrErrorf(loc, &entry.Pos, "Missing translation for '%s'!", ctx.ShowLang)
		}
		ctx.MissingLang++
	}
}

// analyzeEntry walks the String children of an entry, validates their
// tags and attributes, collects the language tags (reporting duplicates)
// and extracts the formatting signature from the reference translation.
func (ctx *Context) analyzeEntry(entry *locfile.Element, loc []string) (translations []*locfile.Element, sig Signature, foundLangs []string) {
	sig = Signature{Required: make(map[string]bool)}
	for _, child := range entry.Children {
		if !ctx.checkKnownTag(child, []string{"String"}, loc) {
			continue
		}
		translations = append(translations, child)
		for _, attr := range child.Attrs {
			if attr.Name != langAttr {
				ctx.Reporter.Errorf(loc, &child.Pos, "Unknown attribute: '%s'", attr.Name)
				continue
			}
			if attr.Value == ReferenceLang {
				sig = ExtractSignature(child.Text)
			}
			if contains(foundLangs, attr.Value) {
				ctx.Reporter.Errorf(loc, &child.Pos, "Found duplicate string for %s", attr.Value)
			}
			foundLangs = append(foundLangs, attr.Value)
		}
	}
	return translations, sig, foundLangs
}

// checkTranslation runs every per-translation check. The checks are
// independent: a finding never suppresses later checks on the same
// translation.
func (ctx *Context) checkTranslation(el *locfile.Element, sig Signature, loc []string) {
	text := el.Text
	lang, _ := el.Attr(langAttr)
	start := el.TextPos
	loc = append(loc, lang)

	if ctx.Preview != nil {
		ctx.Preview.AddString(lang, text)
	}

	found := directive.ShortFormats(text)
	if len(found) > 0 && sig.HasFormatting() {
		ctx.checkFormatting(found, sig, start, loc)
	}

	ctx.checkVariables(text, sig, start, loc)

	if len(text) == 0 {
		ctx.Reporter.Errorf(loc, &start, "Found empty translation")
	}

	if off := directive.StrayMarkerOffset(text); off >= 0 {
		ctx.Reporter.Errorf(loc, at(start, off), "Found invalid text formatting (~)")
	}

	if off := directive.SpacingIssue(text); off >= 0 {
		ctx.Reporter.WarnOrErrorf(loc, at(start, off), "Found too many spaces between words")
	}

	if off := directive.PunctuationIssue(text); off >= 0 {
		ctx.Reporter.WarnOrErrorf(loc, at(start, off), "Found invalid punctuation mark placement")
	}
}

// checkFormatting compares a translation's short-format directives against
// the entry's signature: invalid set, missing set, back-to-back duplicates
// and the terminal directive.
func (ctx *Context) checkFormatting(found []directive.Match, sig Signature, start locfile.Position, loc []string) {
	foundSet := make(map[string]bool, len(found))
	for _, m := range found {
		foundSet[m.Literal] = true
	}

	var invalid []string
	invalidSet := make(map[string]bool)
	for _, m := range found {
		if !sig.Required[m.Literal] && !invalidSet[m.Literal] {
			invalidSet[m.Literal] = true
			invalid = append(invalid, m.Literal)
		}
	}
	if len(invalid) > 0 {
		first := -1
		for _, m := range found {
			if invalidSet[m.Literal] {
				first = m.Offset
				break
			}
		}
		ctx.Reporter.Errorf(loc, at(start, first), "Found invalid text formatting: %s", strings.Join(invalid, ", "))
	}

	var missing []string
	for _, lit := range sig.RequiredOrder {
		if !foundSet[lit] {
			missing = append(missing, lit)
		}
	}
	if len(missing) > 0 {
		ctx.Reporter.Errorf(loc, &start, "Missing text formatting: %s", strings.Join(missing, ", "))
	}

	for i := 0; i+1 < len(found); i++ {
		if directive.Exempt(found[i].Literal) {
			continue
		}
		if found[i].Literal == found[i+1].Literal {
			ctx.Reporter.Errorf(loc, at(start, found[i+1].Offset), "Found text formatting duplicate: %s", found[i].Literal)
			break
		}
	}

	last := found[len(found)-1]
	if last.Literal != sig.Terminal {
		ctx.Reporter.Errorf(loc, at(start, last.Offset),
			"String ends with a wrong format '%s', expected '%s'", last.Literal, sig.Terminal)
	}
}

// checkVariables compares placeholder occurrences against the signature.
// Fewer occurrences than required reports the missing literals; more
// reports the unneeded ones at the last extra occurrence.
func (ctx *Context) checkVariables(text string, sig Signature, start locfile.Position, loc []string) {
	found := directive.Placeholders(text)

	switch {
	case len(found) < len(sig.Variables):
		foundSet := make(map[string]bool, len(found))
		for _, m := range found {
			foundSet[m.Literal] = true
		}
		var missing []string
		for _, v := range sig.Variables {
			if !foundSet[v] {
				missing = append(missing, v)
			}
		}
		if len(missing) > 0 {
			ctx.Reporter.Errorf(loc, &start, "Missing variables: %s", strings.Join(missing, ", "))
		}

	case len(found) > len(sig.Variables):
		requiredSet := make(map[string]bool, len(sig.Variables))
		for _, v := range sig.Variables {
			requiredSet[v] = true
		}
		var unneeded []string
		lastOffset := -1
		for _, m := range found {
			if !requiredSet[m.Literal] {
				unneeded = append(unneeded, m.Literal)
				lastOffset = m.Offset
			}
		}
		if len(unneeded) > 0 {
			ctx.Reporter.Errorf(loc, at(start, lastOffset), "Found too many variables: %s", strings.Join(unneeded, ", "))
		}
	}
}

// MissingSummary formats the end-of-run missing-translation totals for the
// selected language.
func (ctx *Context) MissingSummary() string {
	if ctx.ShowLang == "" {
		return ""
	}
	done := ctx.TotalStrings - ctx.MissingLang
	percent := 0
	if ctx.TotalStrings > 0 {
		percent = done * 100 / ctx.TotalStrings
	}
	return fmt.Sprintf("Total missing translations for '%s': %d. Progress: %d/%d (%d%%)",
		ctx.ShowLang, ctx.MissingLang, done, ctx.TotalStrings, percent)
}

// at offsets a translation start position by a byte offset within the
// translation text. Translation text is single-line in practice; the
// offset moves the column only.
func at(start locfile.Position, off int) *locfile.Position {
	return &locfile.Position{Line: start.Line, Col: start.Col + off}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
