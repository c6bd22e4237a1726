package service

import (
	"context"
	"fmt"
	"time"

	"dinehub/internal/model"
	"dinehub/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// menuService implements MenuService.
type menuService struct {
	menuRepo     repository.MenuRepository
	categoryRepo repository.CategoryRepository
	logger       zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(
	menuRepo repository.MenuRepository,
	categoryRepo repository.CategoryRepository,
	logger zerolog.Logger,
) MenuService {
	return &menuService{
		menuRepo:     menuRepo,
		categoryRepo: categoryRepo,
		logger:       logger.With().Str("service", "menu").Logger(),
	}
}

// Create adds a menu item to the catalog. A missing discounted price
// defaults to the main price so orders always resolve an authoritative unit
// price.
func (s *menuService) Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	if err := s.validateItem(ctx, item); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item.ID = uuid.New().String()
	item.IsDeleted = false
	item.CreatedAt = now
	item.UpdatedAt = now
	if item.DiscountedPrice == 0 {
		item.DiscountedPrice = item.MainPrice
	}

	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	s.logger.Info().
		Str("item_id", item.ID).
		Str("name", item.Name).
		Float64("discounted_price", item.DiscountedPrice).
		Msg("menu item created")

	return item, nil
}

// Update replaces an existing menu item, preserving its identity and
// creation time.
func (s *menuService) Update(ctx context.Context, id string, item *model.MenuItem) (*model.MenuItem, error) {
	if err := s.validateItem(ctx, item); err != nil {
		return nil, err
	}

	existing, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.ID = existing.ID
	item.IsDeleted = false
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now().UTC()
	if item.DiscountedPrice == 0 {
		item.DiscountedPrice = item.MainPrice
	}

	if err := s.menuRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// GetByID retrieves a single menu item.
func (s *menuService) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	if id == "" {
		return nil, model.ErrMenuItemNotFound
	}
	return s.menuRepo.GetByID(ctx, id)
}

// List retrieves menu items matching the filter.
func (s *menuService) List(ctx context.Context, filter model.MenuFilter) ([]model.MenuItem, error) {
	items, err := s.menuRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list menu items")
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}

// SetAvailability toggles whether a menu item can currently be ordered.
func (s *menuService) SetAvailability(ctx context.Context, id string, available bool) error {
	if err := s.menuRepo.SetAvailability(ctx, id, available); err != nil {
		return err
	}

	s.logger.Info().Str("item_id", id).Bool("available", available).Msg("availability updated")
	return nil
}

// Delete soft-deletes a menu item. Orders already referencing it keep their
// stored totals; new orders can no longer resolve it.
func (s *menuService) Delete(ctx context.Context, id string) error {
	return s.menuRepo.SoftDelete(ctx, id)
}

func (s *menuService) validateItem(ctx context.Context, item *model.MenuItem) error {
	if item == nil {
		return fmt.Errorf("menu item is nil")
	}
	if item.Name == "" {
		return fmt.Errorf("menu item name is required")
	}
	if item.MainPrice < 0 {
		return fmt.Errorf("main price must not be negative")
	}
	if item.DiscountedPrice < 0 {
		return fmt.Errorf("discounted price must not be negative")
	}

	if item.CategoryID != "" {
		if _, err := s.categoryRepo.GetByID(ctx, item.CategoryID); err != nil {
			return err
		}
	}

	return nil
}
