// Package views holds the HTML templates for the customer-facing pages.
package views

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

// Funcs are the helpers available to every page template.
var Funcs = template.FuncMap{
	"lower": strings.ToLower,
}

// Templates parses every page template.
func Templates() (*template.Template, error) {
	return template.New("pages").Funcs(Funcs).ParseFS(templateFS, "templates/*.html")
}

// MustTemplates is Templates for program start-up.
func MustTemplates() *template.Template {
	return template.Must(Templates())
}
