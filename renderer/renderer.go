// Package renderer renders inventory listings as markdown, and markdown for the terminal.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/charmbracelet/glamour"
)

//go:embed templates/*.md
var templates embed.FS

const (
	// StylePlain leaves markdown untouched.
	StylePlain = "plain"
	// StyleAuto picks a dark or light glamour style from the terminal background.
	StyleAuto = "auto"
)

// Styles lists the accepted values for Markdown's style.
var Styles = []string{StylePlain, StyleAuto, "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night"}

// Markdown renders 'md' for the terminal using a glamour style.
//
// With StylePlain, or if rendering fails, md is returned as is.
func Markdown(md, style string) string {
	if style == "" || style == StylePlain {
		return md
	}
	opt := glamour.WithStandardStyle(style)
	if style == StyleAuto {
		opt = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(100))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// renderTemplate renders one of the embedded templates.
func renderTemplate(name string, data any) string {
	content, err := fs.ReadFile(templates, "templates/"+name)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", name, err)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", name, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}
