// Package templates holds the embedded HTML views for the storefront.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Load parses the embedded templates.
func Load() (*template.Template, error) {
	return template.ParseFS(files, "*.html")
}

// MustLoad parses the embedded templates and panics on error.
// The templates are compiled into the binary, so a parse failure is a build defect.
func MustLoad() *template.Template {
	return template.Must(Load())
}
