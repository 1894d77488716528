// Package preview renders validated localization strings as an HTML page
// so translators can see the styled text the way the game draws it.
//
// Each styled run becomes one <span> with the run's classes and inline
// style; line-break markers become explicit <br> tags. The page carries
// the Chalet font faces and the dark background of the in-game look.
package preview

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"

	"github.com/minios-linux/loccheck/style"
)

var page = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html>
<head>
<title>Text formatting preview</title>
<style>
html {
    background-color: #202327;
}
span, h1, h2, h3 {
    color: #ffffff;
}
@font-face {
    font-family: 'Chalet';
    src: url('fonts/ChaletLondonNineteenSixty.ttf');
    font-stretch: normal;
}
@font-face {
    font-family: 'ChaletComprime';
    src: url('fonts/ChaletComprime_CologneSixty.ttf');
    font-stretch: 1%, 100%;
}
.condensed {
    font-family:'ChaletComprime';
    font-size: 2.07vh;
}
.bolded {
    font-weight: bold;
}
span {
    font-family:'Chalet';
    font-weight: lighter;
    font-size: 1.725vh;
}
</style>
</head>
<body>
{{.Body}}</body>
</html>
`))

// Document accumulates the preview body while files are being checked.
type Document struct {
	body strings.Builder
}

// NewDocument returns an empty preview document.
func NewDocument() *Document {
	return &Document{}
}

// AddFile starts a new file section.
func (d *Document) AddFile(name string) {
	fmt.Fprintf(&d.body, "<h1>%s</h1>\n", template.HTMLEscapeString(name))
}

// AddEntry starts a new entry section.
func (d *Document) AddEntry(id string) {
	fmt.Fprintf(&d.body, "<h2>%s</h2>\n", template.HTMLEscapeString(id))
}

// AddString renders one translation: a heading with the language tag
// followed by the styled runs of the text.
func (d *Document) AddString(lang, text string) {
	fmt.Fprintf(&d.body, "<h3>%s</h3>\n", template.HTMLEscapeString(lang))
	d.body.WriteString("<span>")
	for _, run := range style.RenderText(text) {
		if run.Break {
			d.body.WriteString("<br>")
			continue
		}
		d.body.WriteString(spanFor(run))
	}
	d.body.WriteString("</span>\n")
}

// spanFor renders one styled run as an HTML span.
func spanFor(run style.Run) string {
	var classes []string
	if run.Condensed {
		classes = append(classes, "condensed")
	}
	if run.Bold {
		classes = append(classes, "bolded")
	}
	styleAttr := ""
	if run.Italic {
		styleAttr += "font-style: italic;"
	}
	styleAttr += "color: " + run.Color.CSS() + ";"

	var b strings.Builder
	b.WriteString("<span")
	if len(classes) > 0 {
		fmt.Fprintf(&b, ` class="%s"`, strings.Join(classes, " "))
	}
	fmt.Fprintf(&b, ` style="%s">`, styleAttr)
	b.WriteString(template.HTMLEscapeString(run.Text))
	b.WriteString("</span>")
	return b.String()
}

// Render writes the complete HTML document.
func (d *Document) Render(w io.Writer) error {
	return page.Execute(w, struct{ Body template.HTML }{Body: template.HTML(d.body.String())})
}

// WriteFile renders the document to a file.
func (d *Document) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := d.Render(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
