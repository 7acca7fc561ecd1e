package service

import (
	"context"

	"github.com/spicebyte/menu-app/internal/models"
	"github.com/spicebyte/menu-app/internal/repository"
)

// MenuService handles business logic for the menu
type MenuService struct {
	repo repository.MenuRepository
}

// NewMenuService creates a new menu service
func NewMenuService(repo repository.MenuRepository) *MenuService {
	return &MenuService{
		repo: repo,
	}
}

// ListCategories returns the menu grouped by category in display order
func (s *MenuService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.repo.GetAll(ctx)
}
