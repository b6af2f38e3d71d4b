// Package web embeds the single-page study coach UI.
package web

import (
	"embed"
	"html/template"
	"io"
)

//go:embed index.html
var fs embed.FS

var indexTmpl = template.Must(template.ParseFS(fs, "index.html"))

// IndexData is what the page template needs at render time.
type IndexData struct {
	Quote string
}

// RenderIndex writes the form page.
func RenderIndex(w io.Writer, data IndexData) error {
	return indexTmpl.Execute(w, data)
}
