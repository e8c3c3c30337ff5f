// Package sitegen renders the catalog browser to plain files so it can be
// hosted by any static web server. The layout mirrors the HTTP routes:
//
//	index.html
//	list/index.html
//	detail/{id}/index.html
//	static/...
package sitegen

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mrlokans/perpustakaan/internal/entities"
	"github.com/mrlokans/perpustakaan/internal/views"
	"github.com/mrlokans/perpustakaan/internal/web"
)

// Generator writes pages for every book of a catalog.
type Generator struct {
	tmpl   *template.Template
	static fs.FS
}

// New loads templates and static files the same way the HTTP router does;
// empty paths select the embedded copies.
func New(templatesPath, staticPath string) (*Generator, error) {
	tmpl, err := web.Templates(templatesPath)
	if err != nil {
		return nil, err
	}
	static, err := web.Static(staticPath)
	if err != nil {
		return nil, err
	}
	return &Generator{tmpl: tmpl, static: static}, nil
}

// Generate writes the site into dir and returns the number of pages written.
func (g *Generator) Generate(dir string, cat views.Source, card entities.Card) (int, error) {
	pages := 0

	list := views.BuildList(cat, card)
	for _, path := range []string{"index.html", filepath.Join("list", "index.html")} {
		if err := g.writePage(filepath.Join(dir, path), "list", list); err != nil {
			return pages, err
		}
		pages++
	}

	for _, book := range cat.All() {
		id := strconv.Itoa(book.ID)
		page := views.BuildDetail(cat, card, id)
		if !page.Content.Found {
			return pages, fmt.Errorf("book %s listed but not resolvable", id)
		}
		if err := g.writePage(filepath.Join(dir, "detail", id, "index.html"), "detail", page); err != nil {
			return pages, err
		}
		pages++
	}

	if err := g.copyStatic(filepath.Join(dir, "static")); err != nil {
		return pages, err
	}

	return pages, nil
}

func (g *Generator) writePage(path, name string, data any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := g.tmpl.ExecuteTemplate(f, name, data); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}

func (g *Generator) copyStatic(targetDir string) error {
	return fs.WalkDir(g.static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		dstPath := filepath.Join(targetDir, path)
		if d.IsDir() {
			return os.MkdirAll(dstPath, 0755)
		}

		srcFile, err := g.static.Open(path)
		if err != nil {
			return fmt.Errorf("open static %s: %w", path, err)
		}
		defer srcFile.Close()

		dstFile, err := os.Create(dstPath)
		if err != nil {
			return fmt.Errorf("create static %s: %w", path, err)
		}
		defer dstFile.Close()

		if _, err := io.Copy(dstFile, srcFile); err != nil {
			return fmt.Errorf("copy static %s: %w", path, err)
		}
		return nil
	})
}
