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

// categoryService implements CategoryService.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       zerolog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo repository.CategoryRepository, logger zerolog.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger.With().Str("service", "category").Logger(),
	}
}

// Create adds a category.
func (s *categoryService) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	if category == nil || category.Name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	now := time.Now().UTC()
	category.ID = uuid.New().String()
	category.IsDeleted = false
	category.CreatedAt = now
	category.UpdatedAt = now

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info().Str("category_id", category.ID).Str("name", category.Name).Msg("category created")
	return category, nil
}

// Update replaces an existing category, preserving its identity and creation
// time.
func (s *categoryService) Update(ctx context.Context, id string, category *model.Category) (*model.Category, error) {
	if category == nil || category.Name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	existing, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.ID = existing.ID
	category.IsDeleted = false
	category.CreatedAt = existing.CreatedAt
	category.UpdatedAt = time.Now().UTC()

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// GetByID retrieves a single category.
func (s *categoryService) GetByID(ctx context.Context, id string) (*model.Category, error) {
	if id == "" {
		return nil, model.ErrCategoryNotFound
	}
	return s.categoryRepo.GetByID(ctx, id)
}

// List retrieves all categories.
func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Delete soft-deletes a category. Menu items keep their category reference;
// listing simply no longer offers the category.
func (s *categoryService) Delete(ctx context.Context, id string) error {
	return s.categoryRepo.SoftDelete(ctx, id)
}
