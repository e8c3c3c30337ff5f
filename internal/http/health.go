package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	catalog BookCatalog
	version string
}

func NewHealthController(catalog BookCatalog, version string) *HealthController {
	return &HealthController{
		catalog: catalog,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)

	if h.catalog != nil {
		checks["catalog"] = "ok"
		checks["books"] = strconv.Itoa(h.catalog.Len())
	} else {
		checks["catalog"] = "not configured"
	}

	health := HealthResponse{
		Status:  "healthy",
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	c.IndentedJSON(http.StatusOK, health)
}
