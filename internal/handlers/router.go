package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spicebyte/menu-app/internal/config"
	"github.com/spicebyte/menu-app/internal/middleware"
)

// RouterDeps bundles what the HTTP layer needs
type RouterDeps struct {
	Config  *config.Config
	Logger  *slog.Logger
	Menu    *MenuHandler
	Order   *OrderHandler
	Health  *HealthHandler
	Metrics http.Handler
}

// NewRouter creates a chi router with all routes registered
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Metrics(deps.Config.ServiceName))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(time.Duration(deps.Config.Server.RequestTimeout) * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.CorrelationIDHeader},
		ExposedHeaders:   []string{middleware.CorrelationIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	metrics := deps.Metrics
	if metrics == nil {
		metrics = promhttp.Handler()
	}

	r.Get("/health", deps.Health.ServeHTTP)
	r.Handle("/metrics", metrics)

	r.Get("/", deps.Menu.ShowMenu)
	r.Post("/order", deps.Order.ReviewOrder)

	return r
}
