package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hedgeanalytics/bis-widgets-go/internal/widgets"
)

// WidgetsHandler serves the widget metadata the dashboard host discovers
// through /widgets.json.
type WidgetsHandler struct {
	registry widgets.Registry
}

// NewWidgetsHandler creates a new instance of WidgetsHandler.
func NewWidgetsHandler(registry widgets.Registry) *WidgetsHandler {
	return &WidgetsHandler{registry: registry}
}

// GetWidgets handles GET /widgets.json.
func (h *WidgetsHandler) GetWidgets(c *gin.Context) {
	c.JSON(http.StatusOK, h.registry)
}
