package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/spicebyte/menu-app/internal/service"
	"github.com/spicebyte/menu-app/pkg/logger"
)

// OrderHandler handles order review requests
type OrderHandler struct {
	orderService *service.OrderService
	renderer     *Renderer
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, renderer *Renderer, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		renderer:     renderer,
		log:          log,
	}
}

// ReviewOrder handles POST /order
func (h *OrderHandler) ReviewOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx, h.log)

	fields, err := readOrderedForm(w, r)
	if err != nil {
		log.Warn("failed to read order form", "error", err)

		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			h.renderer.RenderError(w, http.StatusRequestEntityTooLarge, "The submitted form is too large.", log)
		case errors.Is(err, ErrUnsupportedForm):
			h.renderer.RenderError(w, http.StatusUnsupportedMediaType, "The order form could not be read.", log)
		default:
			h.renderer.RenderError(w, http.StatusBadRequest, "The order form could not be read.", log)
		}
		return
	}

	summary := h.orderService.ReviewOrder(ctx, fields)
	recordOrderReview(summary)

	if err := h.renderer.Render(w, http.StatusOK, orderPage, summary); err != nil {
		log.Error("failed to render order summary", "error", err)
		h.renderer.RenderError(w, http.StatusInternalServerError, "Your order could not be displayed.", log)
		return
	}

	log.Info("order reviewed", "lines", len(summary.Lines), "items", summary.ItemCount(), "total", summary.Total.StringFixed(2))
}
