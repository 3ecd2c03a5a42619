package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/xGiancox/Barberiaapp/internal/api"
	"github.com/xGiancox/Barberiaapp/internal/config"
	"github.com/xGiancox/Barberiaapp/internal/metrics"
	"github.com/xGiancox/Barberiaapp/internal/repository"
	"github.com/xGiancox/Barberiaapp/internal/service"
	"github.com/xGiancox/Barberiaapp/pkg/logging"
)

func main() {
	logging.Setup()

	// Load configuration
	cfg := config.LoadConfig()

	// Set up database connection
	db, err := config.SetupDatabase(cfg)
	if err != nil {
		slog.Error("failed to set up database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Create repository
	repo := repository.NewSQLRepository(db)

	// Create service
	svc := service.NewDefaultService(repo, cfg.Auth.JWTSecret)

	// Create API handler
	handler := api.NewHandler(svc)

	// Set up Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), api.RequestLogger(), metrics.Middleware())

	// Add middleware for JWT secret
	router.Use(func(c *gin.Context) {
		c.Set("jwtSecret", []byte(cfg.Auth.JWTSecret))
		c.Next()
	})

	// Set up routes
	handler.SetupRoutes(router)
	router.GET("/metrics", metrics.Handler())

	// Start server
	serverAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Info("starting server", "addr", serverAddr, "db_driver", cfg.Database.Driver)
	if err := http.ListenAndServe(serverAddr, router); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
