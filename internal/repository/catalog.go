package repository

import (
	"github.com/shopspring/decimal"

	"github.com/spicebyte/menu-app/internal/models"
)

// Catalog is the fixed restaurant menu. It is built once at startup and
// only read afterwards, so it is safe to share between requests.
type Catalog struct {
	categories []models.Category
	index      map[string]models.MenuItem
}

// BuildCatalog constructs the default menu and its flat id index
func BuildCatalog() *Catalog {
	return NewCatalog(defaultMenu())
}

// NewCatalog builds a catalog from the given categories. Item ids must be
// unique across categories; a later duplicate replaces the earlier index entry.
func NewCatalog(categories []models.Category) *Catalog {
	index := make(map[string]models.MenuItem)
	for _, category := range categories {
		for _, item := range category.Items {
			index[item.ID] = item
		}
	}

	return &Catalog{
		categories: categories,
		index:      index,
	}
}

// Categories returns the menu in display order
func (c *Catalog) Categories() []models.Category {
	out := make([]models.Category, len(c.categories))
	for i, category := range c.categories {
		items := make([]models.MenuItem, len(category.Items))
		copy(items, category.Items)
		out[i] = models.Category{Name: category.Name, Items: items}
	}
	return out
}

// Lookup finds an item by id. The boolean is false for unknown ids.
func (c *Catalog) Lookup(id string) (models.MenuItem, bool) {
	item, ok := c.index[id]
	return item, ok
}

// Len returns the number of indexed items
func (c *Catalog) Len() int {
	return len(c.index)
}

func defaultMenu() []models.Category {
	return []models.Category{
		{Name: "Starters", Items: []models.MenuItem{
			{ID: "samosa", Name: "Veg Samosa (2 pcs)", Price: price("40.00"), IsVeg: true},
			{ID: "tikka", Name: "Chicken Tikka", Price: price("180.00"), IsVeg: false},
		}},
		{Name: "Mains", Items: []models.MenuItem{
			{ID: "paneer", Name: "Paneer Butter Masala", Price: price("240.00"), IsVeg: true},
			{ID: "chkcurry", Name: "Chicken Curry", Price: price("260.00"), IsVeg: false},
		}},
		{Name: "Breads", Items: []models.MenuItem{
			{ID: "naan", Name: "Butter Naan", Price: price("35.00"), IsVeg: true},
			{ID: "roti", Name: "Tandoori Roti", Price: price("20.00"), IsVeg: true},
		}},
		{Name: "Desserts", Items: []models.MenuItem{
			{ID: "jamun", Name: "Gulab Jamun (2 pcs)", Price: price("60.00"), IsVeg: true},
		}},
		{Name: "Beverages", Items: []models.MenuItem{
			{ID: "chaas", Name: "Masala Chaas", Price: price("35.00"), IsVeg: true},
			{ID: "cola", Name: "Cola", Price: price("40.00"), IsVeg: true},
		}},
	}
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
