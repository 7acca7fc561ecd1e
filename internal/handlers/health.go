package handlers

import (
	"log/slog"
	"net/http"
	"time"
)

// itemCounter reports how many menu items are loaded
type itemCounter interface {
	Len() int
}

// HealthHandler provides health check endpoint
type HealthHandler struct {
	catalog itemCounter
	logger  *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(catalog itemCounter, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	MenuItems int       `json:"menu_items"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   "1.0.0",
		MenuItems: h.catalog.Len(),
	}

	status := http.StatusOK
	if response.MenuItems == 0 {
		response.Status = "unhealthy"
		status = http.StatusServiceUnavailable
	}

	WriteJSON(w, status, response, h.logger)
}
