package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChromaDiv/supply-chain-app/internal/service"
)

type DashboardHandler struct {
	service *service.InventoryService
}

func NewDashboardHandler(service *service.InventoryService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetDashboard serves the derived analytics views for the current data.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	dash, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute dashboard", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dash)
}
