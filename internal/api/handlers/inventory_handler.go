package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ChromaDiv/supply-chain-app/internal/domain"
	"github.com/ChromaDiv/supply-chain-app/internal/repository"
	"github.com/ChromaDiv/supply-chain-app/internal/service"
)

type InventoryHandler struct {
	service *service.InventoryService
}

func NewInventoryHandler(service *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// GetInventory serves the full product collection.
func (h *InventoryHandler) GetInventory(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch inventory", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

type reorderRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

// Reorder books a replenishment order for one product.
func (h *InventoryHandler) Reorder(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reorder request", "details": err.Error()})
		return
	}

	outcome, err := h.service.Reorder(c.Request.Context(), req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process reorder", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, outcome)
}

type productCreateRequest struct {
	SKU          string          `json:"sku" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	CurrentStock int             `json:"current_stock" binding:"gte=0"`
	ReorderPoint int             `json:"reorder_point" binding:"gte=0"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	LeadTimeDays int             `json:"lead_time_days"`
	SupplierID   *int64          `json:"supplier_id"`
}

// CreateProduct registers a new SKU.
func (h *InventoryHandler) CreateProduct(c *gin.Context) {
	var req productCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product payload", "details": err.Error()})
		return
	}

	created, err := h.service.CreateProduct(c.Request.Context(), domain.Product{
		SKU:          req.SKU,
		Name:         req.Name,
		CurrentStock: req.CurrentStock,
		ReorderPoint: req.ReorderPoint,
		UnitCost:     req.UnitCost,
		LeadTimeDays: req.LeadTimeDays,
		SupplierID:   req.SupplierID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// DeleteProduct removes a SKU. Deleting an unknown id still answers 200 so
// the action stays idempotent for clients.
func (h *InventoryHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
