// Package web bundles the browser page: its template and static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates static
var files embed.FS

// PageTemplate is the name the page is rendered under.
const PageTemplate = "index.html"

// Templates parses the page templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(files, "templates/*.html")
}

// Static serves the page's script and stylesheet.
func Static() http.FileSystem {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
