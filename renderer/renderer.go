// Package renderer turns goldbook reports into markdown. It consumes only
// the derived data model and never re-computes a balance: signs, Cr/Db
// suffixes and number formatting are presentation concerns that live here.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/alwazzan/goldbook"
)

//go:embed *.md
var templates embed.FS

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// SignedGold renders a gold balance with the bookkeeping suffix: Db for
// positive, Cr for negative, a dash for zero.
func SignedGold(g goldbook.Gold) string {
	switch {
	case g.IsZero():
		return "-"
	case g.IsNegative():
		return g.Abs().String() + " Cr"
	default:
		return g.String() + " Db"
	}
}

// SignedMoney renders a currency balance with the bookkeeping suffix.
func SignedMoney(m goldbook.Money) string {
	switch {
	case m.IsZero():
		return "-"
	case m.IsNegative():
		return m.Abs().String() + " Cr"
	default:
		return m.String() + " Db"
	}
}
