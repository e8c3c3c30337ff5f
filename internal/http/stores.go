package http

import (
	"github.com/mrlokans/perpustakaan/internal/entities"
	"github.com/mrlokans/perpustakaan/internal/views"
)

// BookCatalog is the read-only catalog access the controllers need.
// *catalog.Catalog satisfies it.
type BookCatalog interface {
	views.Source
	Lookup(id int) (entities.Book, bool)
	Len() int
}
