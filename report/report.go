// Package report implements diagnostic accumulation and printing.
//
// Diagnostics carry a severity, a message and a location made of a file
// name, optional breadcrumbs into the document (entry, language) and an
// optional line/column position. The printed form is part of the tool's
// stable output contract:
//
//	[severity-marker] file[line,col]->crumb->crumb:
//	message
//
// with markers [*] (warning), [!] (error) and [!!!] (fatal).
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/minios-linux/loccheck/locfile"
)

// Severity classifies a diagnostic.
type Severity int

const (
	// Warning is printed but does not affect the exit status, unless
	// warnings are promoted to errors by configuration.
	Warning Severity = iota
	// Error marks schema violations and consistency failures. Processing
	// continues; the run exits non-zero.
	Error
	// Fatal marks a file that could not be parsed at all. The file is
	// skipped; the run exits non-zero.
	Fatal
)

// Marker returns the console marker for the severity.
func (s Severity) Marker() string {
	switch s {
	case Fatal:
		return "[!!!]"
	case Error:
		return "[!]"
	default:
		return "[*]"
	}
}

// Diagnostic is one recorded finding. Diagnostics are appended and never
// mutated.
type Diagnostic struct {
	Severity Severity
	Message  string
	Location []string
	Pos      *locfile.Position
}

// LocationString renders "file[line,col]->crumb->crumb".
func LocationString(loc []string, pos *locfile.Position) string {
	if len(loc) == 0 {
		return ""
	}
	s := loc[0]
	if pos != nil {
		s += fmt.Sprintf("[%d,%d]", pos.Line, pos.Col)
	}
	if len(loc) > 1 {
		s += "->" + strings.Join(loc[1:], "->")
	}
	return s
}

var (
	warnColor  = color.New(color.FgYellow)
	errColor   = color.New(color.FgRed)
	fatalColor = color.New(color.FgRed, color.Bold)
)

// Reporter accumulates and prints diagnostics and owns the severity
// counters the exit-code decision is based on.
type Reporter struct {
	Out              io.Writer
	WarningsAsErrors bool

	Warnings    int
	Errors      int
	FatalErrors int

	Diagnostics []Diagnostic
}

// NewReporter returns a Reporter printing to out (os.Stdout when nil).
func NewReporter(out io.Writer) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	return &Reporter{Out: out}
}

// Warnf records and prints a warning.
func (r *Reporter) Warnf(loc []string, pos *locfile.Position, format string, args ...any) {
	r.emit(Diagnostic{Severity: Warning, Message: fmt.Sprintf(format, args...), Location: loc, Pos: pos})
}

// Errorf records and prints an error.
func (r *Reporter) Errorf(loc []string, pos *locfile.Position, format string, args ...any) {
	r.emit(Diagnostic{Severity: Error, Message: fmt.Sprintf(format, args...), Location: loc, Pos: pos})
}

// Fatalf records and prints a fatal error. Despite the name it does not
// stop anything: the caller skips the broken file and carries on.
func (r *Reporter) Fatalf(loc []string, pos *locfile.Position, format string, args ...any) {
	r.emit(Diagnostic{Severity: Fatal, Message: fmt.Sprintf(format, args...), Location: loc, Pos: pos})
}

// WarnOrErrorf records a warning, or an error when warnings are promoted.
func (r *Reporter) WarnOrErrorf(loc []string, pos *locfile.Position, format string, args ...any) {
	if r.WarningsAsErrors {
		r.Errorf(loc, pos, format, args...)
		return
	}
	r.Warnf(loc, pos, format, args...)
}

// HasErrors reports whether the run must exit non-zero.
func (r *Reporter) HasErrors() bool {
	return r.Errors > 0 || r.FatalErrors > 0
}

func (r *Reporter) emit(d Diagnostic) {
	var c *color.Color
	switch d.Severity {
	case Fatal:
		r.FatalErrors++
		c = fatalColor
	case Error:
		r.Errors++
		c = errColor
	default:
		r.Warnings++
		c = warnColor
	}
	r.Diagnostics = append(r.Diagnostics, d)
	c.Fprintf(r.Out, "%s %s:\n%s\n", d.Severity.Marker(), LocationString(d.Location, d.Pos), d.Message)
	fmt.Fprintln(r.Out)
}
