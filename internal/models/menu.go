package models

import "github.com/shopspring/decimal"

// MenuItem represents a dish or drink that can be ordered
type MenuItem struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	IsVeg bool            `json:"isVeg"`
}

// Category groups menu items under a display heading
type Category struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}
