package http

import (
	"github.com/mrlokans/perpustakaan/internal/entities"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Catalog BookCatalog
	Card    entities.Card

	// UI paths, empty means embedded assets
	TemplatesPath string
	StaticPath    string

	// Application info
	Version string
}
