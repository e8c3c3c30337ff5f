// Package web bundles the HTML templates and static assets of the catalog
// browser. Both can be replaced by directories on disk for development.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses the page templates. When dir is empty the embedded copies
// are used, otherwise every *.html file in dir.
func Templates(dir string) (*template.Template, error) {
	tmpl := template.New("")

	if dir == "" {
		parsed, err := tmpl.ParseFS(templateFS, "templates/*.html")
		if err != nil {
			return nil, fmt.Errorf("parse embedded templates: %w", err)
		}
		return parsed, nil
	}

	parsed, err := tmpl.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("parse templates in %s: %w", dir, err)
	}
	return parsed, nil
}

// Static returns the file system served under /static.
func Static(dir string) (fs.FS, error) {
	if dir == "" {
		sub, err := fs.Sub(staticFS, "static")
		if err != nil {
			return nil, fmt.Errorf("access embedded static files: %w", err)
		}
		return sub, nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("static dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("static dir %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}
