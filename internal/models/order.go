package models

import "github.com/shopspring/decimal"

// FormField is a single submitted form pair, kept in submission order
type FormField struct {
	Key   string
	Value string
}

// LineItem is one row of a reviewed order
type LineItem struct {
	ItemID    string          `json:"itemId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderSummary holds the line items of a submitted form and their grand total
type OrderSummary struct {
	Lines []LineItem      `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// IsEmpty reports whether nothing was selected
func (s OrderSummary) IsEmpty() bool {
	return len(s.Lines) == 0
}

// ItemCount returns the total quantity across all lines
func (s OrderSummary) ItemCount() int {
	count := 0
	for _, line := range s.Lines {
		count += line.Quantity
	}
	return count
}
