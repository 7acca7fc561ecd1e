package service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/spicebyte/menu-app/internal/models"
)

// QuantityFieldPrefix prefixes every quantity input name on the menu form
const QuantityFieldPrefix = "qty_"

// ItemLookup resolves menu items by id
type ItemLookup interface {
	Lookup(id string) (models.MenuItem, bool)
}

// CalculateOrder turns submitted form pairs into an order summary.
//
// Pairs whose key is not a quantity field, whose value is not a positive
// integer, or whose item id is unknown are skipped. Lines keep the input
// order. The function has no side effects.
func CalculateOrder(index ItemLookup, fields []models.FormField) models.OrderSummary {
	summary := models.OrderSummary{
		Lines: make([]models.LineItem, 0, len(fields)),
		Total: decimal.Zero,
	}

	for _, field := range fields {
		line, ok := lineFromField(index, field)
		if !ok {
			continue
		}
		summary.Lines = append(summary.Lines, line)
		summary.Total = summary.Total.Add(line.Subtotal)
	}

	return summary
}

func lineFromField(index ItemLookup, field models.FormField) (models.LineItem, bool) {
	itemID, ok := strings.CutPrefix(field.Key, QuantityFieldPrefix)
	if !ok {
		return models.LineItem{}, false
	}

	qty := parseQuantity(field.Value)
	if qty <= 0 {
		return models.LineItem{}, false
	}

	item, ok := index.Lookup(itemID)
	if !ok {
		return models.LineItem{}, false
	}

	return models.LineItem{
		ItemID:    itemID,
		Name:      item.Name,
		UnitPrice: item.Price,
		Quantity:  qty,
		Subtotal:  item.Price.Mul(decimal.NewFromInt(int64(qty))),
	}, true
}

// parseQuantity returns 0 for anything that is not a base-10 integer
func parseQuantity(raw string) int {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return qty
}

// OrderService handles order review against the menu catalog
type OrderService struct {
	catalog ItemLookup
	log     *slog.Logger
}

// NewOrderService creates a new order service
func NewOrderService(catalog ItemLookup, log *slog.Logger) *OrderService {
	return &OrderService{
		catalog: catalog,
		log:     log,
	}
}

// ReviewOrder computes the summary for a submitted menu form
func (s *OrderService) ReviewOrder(ctx context.Context, fields []models.FormField) models.OrderSummary {
	summary := CalculateOrder(s.catalog, fields)

	s.log.DebugContext(ctx, "order reviewed",
		"fields", len(fields),
		"lines", len(summary.Lines),
		"total", summary.Total.StringFixed(2),
	)

	return summary
}
