package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CoversController serves book cover images from the static file system.
type CoversController struct {
	catalog BookCatalog
	files   http.FileSystem
}

// NewCoversController creates a new CoversController.
func NewCoversController(catalog BookCatalog, files http.FileSystem) *CoversController {
	return &CoversController{
		catalog: catalog,
		files:   files,
	}
}

// GetCover serves the cover image of a book.
// GET /api/books/:id/cover
func (cc *CoversController) GetCover(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, found := cc.catalog.Lookup(id)
	if !found || book.Cover == "" {
		c.Status(http.StatusNotFound)
		return
	}

	c.FileFromFS("covers/"+book.Cover, cc.files)
}
