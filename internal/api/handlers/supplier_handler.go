package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChromaDiv/supply-chain-app/internal/domain"
	"github.com/ChromaDiv/supply-chain-app/internal/service"
)

type SupplierHandler struct {
	service *service.InventoryService
}

func NewSupplierHandler(service *service.InventoryService) *SupplierHandler {
	return &SupplierHandler{service: service}
}

func (h *SupplierHandler) GetSuppliers(c *gin.Context) {
	suppliers, err := h.service.ListSuppliers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch suppliers", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

type supplierCreateRequest struct {
	Name         string `json:"name" binding:"required"`
	ContactEmail string `json:"contact_email"`
	LeadTimeDays int    `json:"lead_time_days" binding:"gte=0"`
}

func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var req supplierCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supplier payload", "details": err.Error()})
		return
	}

	created, err := h.service.CreateSupplier(c.Request.Context(), domain.SupplierRecord{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		LeadTimeDays: req.LeadTimeDays,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create supplier", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}
