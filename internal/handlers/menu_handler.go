package handlers

import (
	"log/slog"
	"net/http"

	"github.com/spicebyte/menu-app/internal/models"
	"github.com/spicebyte/menu-app/internal/service"
	"github.com/spicebyte/menu-app/pkg/logger"
)

// MenuHandler renders the menu page
type MenuHandler struct {
	service  *service.MenuService
	renderer *Renderer
	logger   *slog.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(service *service.MenuService, renderer *Renderer, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		service:  service,
		renderer: renderer,
		logger:   logger,
	}
}

type menuView struct {
	Categories  []models.Category
	MaxQuantity int
}

// ShowMenu handles GET /
func (h *MenuHandler) ShowMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx, h.logger)

	categories, err := h.service.ListCategories(ctx)
	if err != nil {
		log.Error("failed to list menu", "error", err)
		h.renderer.RenderError(w, http.StatusInternalServerError, "The menu is unavailable right now.", log)
		return
	}

	view := menuView{
		Categories:  categories,
		MaxQuantity: MaxQuantityHint,
	}
	if err := h.renderer.Render(w, http.StatusOK, menuPage, view); err != nil {
		log.Error("failed to render menu", "error", err)
		h.renderer.RenderError(w, http.StatusInternalServerError, "The menu could not be displayed.", log)
	}
}
