package templates

import (
	"embed"
	"html/template"
)

//go:embed pages/*.tmpl
var files embed.FS

// Load parses the embedded pages for the gin HTML renderer.
func Load() *template.Template {
	return template.Must(template.New("").ParseFS(files, "pages/*.tmpl"))
}
