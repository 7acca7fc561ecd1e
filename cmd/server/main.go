package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spicebyte/menu-app/internal/config"
	"github.com/spicebyte/menu-app/internal/handlers"
	"github.com/spicebyte/menu-app/internal/repository"
	"github.com/spicebyte/menu-app/internal/service"
	"github.com/spicebyte/menu-app/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(log)

	log.Info("starting restaurant menu server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// The catalog must be complete before the first request is served
	catalog := repository.BuildCatalog()
	log.Info("menu catalog loaded",
		"categories", len(catalog.Categories()),
		"items", catalog.Len(),
	)

	// Initialize repositories
	menuRepo := repository.NewInMemoryMenuRepository(catalog)

	// Initialize services
	menuService := service.NewMenuService(menuRepo)
	orderService := service.NewOrderService(catalog, log)

	renderer, err := handlers.NewRenderer()
	if err != nil {
		log.Error("failed to load templates", "error", err)
		os.Exit(1)
	}

	// Initialize handlers
	router := handlers.NewRouter(handlers.RouterDeps{
		Config: cfg,
		Logger: log,
		Menu:   handlers.NewMenuHandler(menuService, renderer, log),
		Order:  handlers.NewOrderHandler(orderService, renderer, log),
		Health: handlers.NewHealthHandler(catalog, log),
	})

	// Create HTTP server
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
