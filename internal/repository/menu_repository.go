package repository

import (
	"context"
	"errors"

	"github.com/spicebyte/menu-app/internal/models"
)

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
)

// MenuRepository defines the interface for menu data access
type MenuRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.MenuItem, error)
}

// InMemoryMenuRepository implements MenuRepository on top of a Catalog
type InMemoryMenuRepository struct {
	catalog *Catalog
}

// NewInMemoryMenuRepository creates a repository backed by the given catalog
func NewInMemoryMenuRepository(catalog *Catalog) *InMemoryMenuRepository {
	return &InMemoryMenuRepository{
		catalog: catalog,
	}
}

// GetAll returns every category in display order
func (r *InMemoryMenuRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	return r.catalog.Categories(), nil
}

// GetByID returns a menu item by its id
func (r *InMemoryMenuRepository) GetByID(ctx context.Context, id string) (*models.MenuItem, error) {
	item, ok := r.catalog.Lookup(id)
	if !ok {
		return nil, ErrMenuItemNotFound
	}
	return &item, nil
}
