package cli

import (
	"embed"
	"fmt"
	"io"
	"text/template"

	"github.com/mrlokans/perpustakaan/internal/views"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var screens = template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))

// renderScreen writes a page built by the views package as plain text.
func renderScreen(w io.Writer, page any) error {
	var name string
	switch p := page.(type) {
	case views.Page[views.ListView]:
		name = "list"
	case views.Page[views.DetailView]:
		name = "detail"
		if !p.Content.Found {
			name = "not-found"
		}
	default:
		return fmt.Errorf("cannot render %T", page)
	}

	if err := screens.ExecuteTemplate(w, name, page); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}
