package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ChromaDiv/supply-chain-app/internal/api/handlers"
	"github.com/ChromaDiv/supply-chain-app/internal/api/middleware"
	"github.com/ChromaDiv/supply-chain-app/internal/service"
)

// NewRouter wires the backing-store routes and the analytics dashboard.
func NewRouter(inventoryService *service.InventoryService, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if normalized, allowAll := normalizeAllowedOrigins(allowedOrigins); allowAll {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	} else if len(normalized) > 0 {
		corsConfig.AllowOrigins = normalized
	}
	router.Use(cors.New(corsConfig))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "Supply Chain API is Online"})
	})

	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	supplierHandler := handlers.NewSupplierHandler(inventoryService)

	router.GET("/inventory", inventoryHandler.GetInventory)
	router.POST("/reorder", inventoryHandler.Reorder)
	router.POST("/products", inventoryHandler.CreateProduct)
	router.DELETE("/products/:id", inventoryHandler.DeleteProduct)
	router.GET("/suppliers", supplierHandler.GetSuppliers)
	router.POST("/suppliers", supplierHandler.CreateSupplier)

	apiGroup := router.Group("/api/v1")
	{
		dashboardHandler := handlers.NewDashboardHandler(inventoryService)
		apiGroup.GET("/analytics/dashboard", dashboardHandler.GetDashboard)
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		for _, part := range strings.Split(origin, ",") {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
