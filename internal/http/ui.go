package http

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/perpustakaan/internal/entities"
	"github.com/mrlokans/perpustakaan/internal/navigation"
	"github.com/mrlokans/perpustakaan/internal/views"
)

type UIController struct {
	catalog BookCatalog
	card    entities.Card
}

func NewUIController(catalog BookCatalog, card entities.Card) *UIController {
	return &UIController{
		catalog: catalog,
		card:    card,
	}
}

// ListPage renders the list screen.
// GET / and GET /list
func (controller *UIController) ListPage(c *gin.Context) {
	controller.render(c, navigation.ListRoute())
}

// DetailPage renders the detail screen for the book in the :id parameter.
// Unknown or malformed ids get the not-found screen with a 404.
// GET /detail/:id
func (controller *UIController) DetailPage(c *gin.Context) {
	controller.render(c, navigation.Route{Screen: navigation.Detail, ID: c.Param("id")})
}

// Open redirects a route written in the navigation scheme, e.g.
// ?route=detail/3, to the page serving it.
// GET /open
func (controller *UIController) Open(c *gin.Context) {
	route, err := navigation.Parse(c.Query("route"))
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	c.Redirect(http.StatusFound, route.Path())
}

func (controller *UIController) render(c *gin.Context, route navigation.Route) {
	screen, err := views.Screen(controller.catalog, controller.card, route)
	if err != nil {
		respondInternalError(c, err, "build screen")
		return
	}

	switch page := screen.(type) {
	case views.Page[views.ListView]:
		c.HTML(http.StatusOK, "list", page)
	case views.Page[views.DetailView]:
		if !page.Content.Found {
			log.Printf("Book not found: id=%q request_id=%s", page.Content.RequestedID, requestID(c))
			c.HTML(http.StatusNotFound, "not-found", page)
			return
		}
		c.HTML(http.StatusOK, "detail", page)
	default:
		respondInternalError(c, fmt.Errorf("unexpected screen %T", screen), "render screen")
	}
}
