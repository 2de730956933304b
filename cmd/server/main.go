package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ChromaDiv/supply-chain-app/internal/api"
	"github.com/ChromaDiv/supply-chain-app/internal/cache"
	"github.com/ChromaDiv/supply-chain-app/internal/config"
	"github.com/ChromaDiv/supply-chain-app/internal/repository/postgres"
	"github.com/ChromaDiv/supply-chain-app/internal/service"
	"github.com/ChromaDiv/supply-chain-app/pkg/logger"
)

func main() {
	cfg := config.Load()

	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	dashboardCache, err := cache.NewDashboardCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("dashboard cache unavailable, continuing without")
		dashboardCache = cache.NewNoopDashboardCache()
	}

	inventoryService := service.NewInventoryService(
		postgres.NewProductRepository(db),
		postgres.NewSupplierRepository(db),
		dashboardCache,
	)

	router := api.NewRouter(inventoryService, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Log.Info().Msg("server exiting")
}
