package interfaces

import (
	"github.com/mrlokans/perpustakaan/internal/catalog"
	"github.com/mrlokans/perpustakaan/internal/http"
	"github.com/mrlokans/perpustakaan/internal/views"
)

// =============================================================================
// Catalog access
// =============================================================================

var _ views.Source = (*catalog.Catalog)(nil)
var _ http.BookCatalog = (*catalog.Catalog)(nil)
